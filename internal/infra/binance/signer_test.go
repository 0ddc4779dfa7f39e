package binance

import (
	"testing"
)

func TestSigner_Sign(t *testing.T) {
	// Test vector from the Binance API documentation.
	secret := "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
	query := "symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1&recvWindow=5000&timestamp=1499827319559"
	expected := "c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71"

	signer := NewSigner("dummy_api_key", secret)

	if got := signer.Sign(query); got != expected {
		t.Errorf("Sign() mismatch. Expected %s, got %s", expected, got)
	}
}

func TestSigner_APIKey(t *testing.T) {
	signer := NewSigner("my_key", "my_secret")
	if signer.APIKey() != "my_key" {
		t.Errorf("APIKey() = %q, want my_key", signer.APIKey())
	}
}

func TestSigner_Wipe(t *testing.T) {
	signer := NewSigner("key", "secret")
	signer.Wipe()

	if signer.APIKey() != "\x00\x00\x00" {
		t.Error("api key not wiped")
	}
	// Signature over wiped key must differ from the original.
	fresh := NewSigner("key", "secret")
	if signer.Sign("abc") == fresh.Sign("abc") {
		t.Error("secret key not wiped")
	}
}

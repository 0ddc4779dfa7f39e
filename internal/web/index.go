package web

// indexHTML is the order form. It posts to /api/orders and shows the raw
// result or error in the status area, mirroring the CLI output.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Binance Futures Testnet Bot</title>
<style>
  body { font-family: sans-serif; max-width: 520px; margin: 2rem auto; }
  label { display: block; margin-top: .7rem; }
  input, select { width: 100%; padding: .4rem; box-sizing: border-box; }
  button { margin-top: 1rem; padding: .6rem 1.4rem; }
  #status { margin-top: 1rem; white-space: pre-wrap; font-family: monospace; }
  .ok { color: green; } .err { color: red; }
  .hidden { display: none; }
</style>
</head>
<body>
<h2>Binance Futures Testnet Bot</h2>
<form id="order-form">
  <label>API Key <input name="api_key" required></label>
  <label>API Secret <input name="api_secret" type="password" required></label>
  <label>Symbol <input name="symbol" value="BTCUSDT" required></label>
  <label>Side
    <select name="side"><option>BUY</option><option>SELL</option></select>
  </label>
  <label>Order Type
    <select name="type" id="type">
      <option>MARKET</option><option>LIMIT</option><option>STOP_LIMIT</option>
    </select>
  </label>
  <label>Quantity <input name="quantity" value="0.001" required></label>
  <label id="price-row" class="hidden">Price <input name="price"></label>
  <label id="stop-row" class="hidden">Stop Price <input name="stop_price"></label>
  <button type="submit" id="submit-btn">Place Order</button>
</form>
<div id="status"></div>
<script>
const typeSel = document.getElementById('type');
const priceRow = document.getElementById('price-row');
const stopRow = document.getElementById('stop-row');
function togglePriceFields() {
  priceRow.classList.toggle('hidden', typeSel.value === 'MARKET');
  stopRow.classList.toggle('hidden', typeSel.value !== 'STOP_LIMIT');
}
typeSel.addEventListener('change', togglePriceFields);
togglePriceFields();

const form = document.getElementById('order-form');
const status = document.getElementById('status');
const btn = document.getElementById('submit-btn');
form.addEventListener('submit', async (e) => {
  e.preventDefault();
  btn.disabled = true;
  status.className = '';
  status.textContent = 'Processing order...';
  try {
    const resp = await fetch('/api/orders', {
      method: 'POST',
      body: new URLSearchParams(new FormData(form)),
    });
    const data = await resp.json();
    if (resp.ok) {
      status.className = 'ok';
      status.textContent = '✅ Order ' + data.order_id + ' placed: ' +
        data.status + '\n' + JSON.stringify(data, null, 2);
    } else {
      status.className = 'err';
      status.textContent = '❌ Error: ' +
        (data.error || JSON.stringify(data.validation_errors));
    }
  } catch (err) {
    status.className = 'err';
    status.textContent = '❌ Error: ' + err;
  } finally {
    btn.disabled = false;
  }
});
</script>
</body>
</html>
`

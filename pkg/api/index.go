package api

// indexPage is the minimal query form. Rendering and styling of results
// happen client-side; the server only ships this shell and JSON.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>WeatherWear</title>
<style>
  body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; padding: 0 1rem; }
  label { display: block; margin-top: 1rem; }
  pre { background: #f4f4f4; padding: 1rem; white-space: pre-wrap; }
  .error { color: #a00; }
</style>
</head>
<body>
<h1>WeatherWear</h1>
<p>Ask for an outfit: try "Tokyo tomorrow", "here", or "New York".</p>
<form id="f">
  <label>Location <input name="location" placeholder="Tokyo tomorrow" required></label>
  <label>Style
    <select name="style">
      <option value="casual">Casual</option>
      <option value="formal">Formal</option>
      <option value="sporty">Sporty</option>
    </select>
  </label>
  <label><input type="checkbox" name="forecast"> Show 5-day forecast</label>
  <button type="submit">Recommend</button>
</form>
<div id="out"></div>
<script>
document.getElementById('f').addEventListener('submit', async (ev) => {
  ev.preventDefault();
  const data = new FormData(ev.target);
  if (data.get('forecast')) data.set('forecast', 'on');
  const resp = await fetch('/recommend', { method: 'POST', body: new URLSearchParams(data) });
  const body = await resp.json();
  const out = document.getElementById('out');
  if (!body.success) {
    out.innerHTML = '<p class="error"></p>';
    out.firstChild.textContent = body.error;
    return;
  }
  out.innerHTML = '';
  for (const section of [body.weather, body.outfit, body.forecast]) {
    if (!section) continue;
    const pre = document.createElement('pre');
    pre.textContent = section;
    out.appendChild(pre);
  }
});
</script>
</body>
</html>
`

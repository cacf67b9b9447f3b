package web

const pageHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Pregnancy EDD Calculator</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; color: #222; }
  h1 { font-size: 1.8rem; }
  h2 { font-size: 1.2rem; margin-top: 2rem; }
  section { border-top: 1px solid #ddd; padding-top: .5rem; }
  label { display: block; margin: .5rem 0 .2rem; }
  input { padding: .35rem; font-size: 1rem; }
  .row { display: flex; gap: 1rem; }
  .submit { margin-top: .8rem; padding: .45rem 1rem; font-size: 1rem; cursor: pointer; }
  .info { background: #e8f1fb; padding: .8rem; border-radius: .4rem; white-space: pre-wrap; font-family: inherit; }
  .error { background: #fde8e8; color: #a12; padding: .8rem; border-radius: .4rem; }
  .copy-btn { background-color: #f63366; color: white; border: none; padding: .5rem 1rem; border-radius: .4rem; cursor: pointer; font-size: 1rem; }
  .copy-btn:hover { background-color: #d82b57; }
  .copy-status { margin-left: 10px; color: green; }
</style>
<script>
function copyOut(id, btn) {
  const text = document.getElementById(id).innerText;
  navigator.clipboard.writeText(text).then(function () {
    btn.nextElementSibling.innerText = '📋 Copied!';
  });
}
</script>
</head>
<body>
<h1>🍼 Pregnancy EDD Calculator</h1>
<form method="post" action="/">

<section>
  <h2>📅 Calculate EDD from LMP</h2>
  <label for="lmp">LMP</label>
  <input type="date" id="lmp" name="lmp" value="{{.LMP}}">
  <label for="ref">Reference Date</label>
  <input type="date" id="ref" name="ref" value="{{.Reference}}">
  <div><button class="submit" type="submit" name="section" value="lmp">Calculate EDD from LMP</button></div>
  {{with index .Results "lmp"}}{{template "outcome" dict "O" . "ID" "out-lmp" "Label" "Copy LMP Result"}}{{end}}
</section>

<section>
  <h2>⏳ Calculate Date from Gestational Age</h2>
  <label for="edd">EDD</label>
  <input type="date" id="edd" name="edd" value="{{.EDD}}">
  <div class="row">
    <div><label for="ga_weeks">GA Weeks</label><input type="number" id="ga_weeks" name="ga_weeks" min="0" max="42" step="1" value="{{.GAWeeks}}"></div>
    <div><label for="ga_days">GA Days</label><input type="number" id="ga_days" name="ga_days" min="0" max="6" step="1" value="{{.GADays}}"></div>
  </div>
  <div><button class="submit" type="submit" name="section" value="ga">Calculate Date for Given GA</button></div>
  {{with index .Results "ga"}}{{template "outcome" dict "O" . "ID" "out-ga" "Label" "Copy GA Date"}}{{end}}
</section>

<section>
  <h2>🩻 Calculate EDD from Ultrasound</h2>
  <label for="us_date">Ultrasound Date</label>
  <input type="date" id="us_date" name="us_date" value="{{.USDate}}">
  <div class="row">
    <div><label for="us_weeks">US GA Weeks</label><input type="number" id="us_weeks" name="us_weeks" min="0" max="42" step="1" value="{{.USWeeks}}"></div>
    <div><label for="us_days">US GA Days</label><input type="number" id="us_days" name="us_days" min="0" max="6" step="1" value="{{.USDays}}"></div>
  </div>
  <div><button class="submit" type="submit" name="section" value="us">Calculate EDD from Ultrasound</button></div>
  {{with index .Results "us"}}{{template "outcome" dict "O" . "ID" "out-us" "Label" "Copy US EDD"}}{{end}}
</section>

<section>
  <h2>⚖️ Reconcile EDDs (LMP vs US)</h2>
  <div><button class="submit" type="submit" name="section" value="recon">Reconcile LMP and US EDDs</button></div>
  {{with index .Results "recon"}}{{template "outcome" dict "O" . "ID" "out-recon" "Label" "Copy Reconciliation"}}{{end}}
</section>

</form>
</body>
</html>

{{define "outcome"}}
  {{if .O.Error}}<div class="error">{{.O.Error}}</div>
  {{else}}<pre class="info" id="{{.ID}}">{{.O.Text}}</pre>
  <button type="button" class="copy-btn" onclick="copyOut('{{.ID}}', this)">📋 {{.Label}}</button><span class="copy-status"></span>
  {{end}}
{{end}}
`

package web

// ── Dashboard page ────────────────────────────────────────────────────────────

const tmplDashboard = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>LUMOPlay Usage Dashboard</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,'Segoe UI',Roboto,sans-serif;background:#f6f7f9;color:#1f2328;font-size:14px;line-height:1.5}
a{color:#0969da;text-decoration:none}
a:hover{text-decoration:underline}
nav{background:#fff;border-bottom:1px solid #d0d7de;padding:10px 20px;display:flex;gap:16px;align-items:center}
nav .brand{font-weight:700;font-size:16px;color:#1f2328}
nav .src{margin-left:auto;color:#57606a;font-size:12px}
main{padding:20px;max-width:1200px;margin:0 auto}
h1{font-size:18px;font-weight:700;margin-bottom:14px}
h2{font-size:13px;font-weight:600;color:#57606a;text-transform:uppercase;letter-spacing:.05em;margin:18px 0 10px}
.cards{display:flex;gap:14px;flex-wrap:wrap;margin-bottom:8px}
.card{background:#fff;border:1px solid #d0d7de;border-radius:8px;padding:14px 18px;min-width:170px;flex:1}
.card .val{font-size:24px;font-weight:700}
.card .lbl{font-size:12px;color:#57606a;margin-top:2px}
.panel{background:#fff;border:1px solid #d0d7de;border-radius:8px;padding:16px;margin-bottom:16px}
.panel.error{border-color:#cf222e;background:#fff5f5;color:#cf222e}
.panel.info{border-color:#0969da;background:#f0f7ff}
.filters{display:flex;gap:16px;flex-wrap:wrap;align-items:flex-end}
.filters label{display:block;font-size:12px;color:#57606a;margin-bottom:4px}
.filters input,.filters select{border:1px solid #d0d7de;border-radius:6px;padding:5px 8px;font-size:13px;background:#fff}
.filters select[multiple]{min-width:140px}
.filters button{background:#1f883d;color:#fff;border:none;border-radius:6px;padding:7px 14px;font-size:13px;cursor:pointer}
.filters button:hover{background:#1a7f37}
.charts{display:grid;grid-template-columns:1fr 1fr;gap:16px}
.charts .wide{grid-column:1/-1}
.charts img{width:100%;height:auto;border:1px solid #d0d7de;border-radius:8px;background:#fff}
table{width:100%;border-collapse:collapse;font-size:13px;background:#fff}
th{text-align:left;padding:6px 10px;border-bottom:1px solid #d0d7de;color:#57606a;font-weight:600;font-size:12px}
td{padding:5px 10px;border-bottom:1px solid #eaeef2}
td.num,th.num{text-align:right}
tfoot td{font-weight:600;border-top:1px solid #d0d7de}
details{margin-top:16px}
details summary{cursor:pointer;color:#57606a;font-size:13px}
.upload{display:flex;gap:10px;align-items:center}
.upload input[type=file]{font-size:13px}
.upload button{background:#0969da;color:#fff;border:none;border-radius:6px;padding:6px 12px;font-size:13px;cursor:pointer}
.dim{color:#57606a;font-size:12px}
code{background:#eaeef2;border-radius:4px;padding:1px 5px;font-size:12px}
</style>
</head>
<body>
<nav>
  <span class="brand">LUMOPlay Usage &amp; Metrics Dashboard</span>
  <a href="/">Dashboard</a>
  <span class="src">{{if .SourceName}}source: {{.SourceName}}{{end}}</span>
</nav>
<main>

{{if .Err}}
<div class="panel error">{{.Err}}</div>
{{end}}

<div class="panel">
  <form class="upload" method="POST" action="/upload" enctype="multipart/form-data">
    <input type="file" name="file" accept=".xlsx,.xls,.csv" required>
    <button type="submit">Upload Excel File</button>
    <span class="dim">replaces the default data source for this session</span>
  </form>
</div>

{{if .NoSource}}
<div class="panel info">
  <p>👋 Upload your Excel file to begin.</p>
  <p class="dim">Expected column names:
  <code>date</code>, <code>game</code>, <code>start_time</code>, <code>end_time</code>,
  <code>duration_minutes</code>, <code>device</code>, <code>area</code></p>
</div>
{{else if not .Err}}

<div class="panel">
  <form class="filters" method="GET" action="/">
    <input type="hidden" name="filtered" value="1">
    {{if .Src}}<input type="hidden" name="src" value="{{.Src}}">{{end}}
    <div>
      <label>From</label>
      <input type="date" name="start" value="{{.StartVal}}" min="{{.MinDate}}" max="{{.MaxDate}}">
    </div>
    <div>
      <label>To</label>
      <input type="date" name="end" value="{{.EndVal}}" min="{{.MinDate}}" max="{{.MaxDate}}">
    </div>
    <div>
      <label>Game</label>
      <select name="game" multiple size="4">
        {{range .Games}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Value}}</option>{{end}}
      </select>
    </div>
    <div>
      <label>Device</label>
      <select name="device" multiple size="4">
        {{range .Devices}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Value}}</option>{{end}}
      </select>
    </div>
    <div>
      <label>Area</label>
      <select name="area" multiple size="4">
        {{range .Areas}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Value}}</option>{{end}}
      </select>
    </div>
    <div>
      <button type="submit">Apply Filters</button>
      <a href="/{{if .Src}}?src={{.Src}}{{end}}" class="dim">reset</a>
    </div>
  </form>
</div>

<h2>Key Performance Indicators</h2>
<div class="cards">
  {{range .KPIs}}
  <div class="card"><div class="val">{{.Value}}</div><div class="lbl">{{.Label}}</div></div>
  {{end}}
</div>
<p class="dim">{{.FilteredCount}} of {{.TotalCount}} sessions match the current filters.</p>

<h2>Usage Trends</h2>
<div class="charts">
  <img class="wide" src="/chart/monthly.png?{{.Query}}" alt="Average session duration per month">
  <img src="/chart/games.png?{{.Query}}" alt="Share of sessions by game">
  <img src="/chart/devices.png?{{.Query}}" alt="Sessions by device type">
</div>

{{with .Table}}
<details>
  <summary>View Raw Data Source</summary>
  <table>
    <thead><tr>{{range .Columns}}<th{{if eq .Align "right"}} class="num"{{end}}>{{.Label}}</th>{{end}}</tr></thead>
    <tbody>
      {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
    </tbody>
    {{if .Totals}}{{$totals := .Totals}}<tfoot><tr>{{range $i, $c := .Columns}}{{if eq $i 0}}<td>{{$totals.Label}}</td>{{else}}<td{{if eq $c.Align "right"}} class="num"{{end}}>{{index $totals.Values $c.Key}}</td>{{end}}{{end}}</tr></tfoot>{{end}}
  </table>
</details>
{{end}}

{{end}}
</main>
</body>
</html>
`

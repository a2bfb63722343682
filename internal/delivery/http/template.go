package http

import (
	"html/template"
	"strings"
)

// Templates builds the embedded page templates. The search page keeps the
// original dark styling of the case library; values with an http prefix
// render as clickable links.
func Templates() *template.Template {
	t := template.New("").Funcs(template.FuncMap{
		"isLink": func(v string) bool {
			return strings.HasPrefix(v, "http")
		},
	})
	template.Must(t.Parse(indexTemplate))
	template.Must(t.Parse(chatTemplate))
	return t
}

const indexTemplate = `{{define "index.html"}}<!DOCTYPE html>
<html lang="zh-Hant">
<head>
<meta charset="UTF-8">
<title>亞瑞特案例庫搜尋</title>
<link href="https://fonts.googleapis.com/css2?family=Noto+Sans+TC:wght@500;700&display=swap" rel="stylesheet">
<style>
    body { font-family: 'Noto Sans TC', Arial, sans-serif; background: #121212; margin: 0; padding: 0 0 40px 0;}
    .main-wrap { max-width: 1220px; margin: 40px auto; background: #191919; border-radius: 16px; box-shadow: 0 2px 16px #2c2c2c; padding: 32px 32px 24px 32px;}
    .title-row { display: flex; align-items: center; justify-content: space-between; flex-wrap: wrap; gap: 20px;}
    h1 { font-size: 2.0rem; color: #ffd857; font-weight: 900; margin: 0; letter-spacing: 1px; }
    form { display: flex; align-items: center; gap: 8px; margin: 0;}
    input[type=text] {
        font-size: 1.05rem; padding: 10px 14px;
        border: 2px solid #2462ea; border-radius: 8px; min-width: 300px;
        background: #222; color: #fff; font-weight: 600;
    }
    button[type=submit] {
        background: #2462ea; color: #fff; border: none;
        padding: 10px 24px; border-radius: 8px; font-size: 1.05rem;
        cursor: pointer; font-weight: 900; box-shadow: 0 1px 8px #0003;
    }
    button[type=submit]:hover { background: #16397c; }
    .category-bar { margin: 16px 0 10px 0; display: flex; flex-wrap: wrap; gap: 10px;}
    .chip {
        background: #212940; color: #fff; border: 2px solid #2462ea; border-radius: 999px;
        padding: 7px 14px; font-size: 0.95rem; font-weight: 700; letter-spacing: 1px;
        cursor: pointer;
    }
    .chip:hover, .chip.selected { background: #2462ea; border-color: #ffd857; }
    .filter-row { margin: 6px 0 0 0; display: flex; align-items: center; gap: 10px; color: #ffd857; }
    .filter-row label { font-weight: 800; }
    select[name=company_filter] {
        padding: 7px 14px; color: #222; font-size: 0.98rem; font-weight: 800; border: 2px solid #ffd857;
        background: #ffd857; border-radius: 8px;
    }
    .count-row { margin: 10px 0 8px 0; font-size: 1.0rem; color: #ffd857; font-weight: 700;}
    table { width: 100%; border-collapse: collapse; margin-top: 8px; background: #181818;}
    th, td { border: 1.4px solid #2462ea55; padding: 8px 10px; word-break: break-word; text-align: left; min-width: 130px;}
    th { background: #ffd857; color: #222; font-weight: 900; letter-spacing: 1px;}
    td { color: #fff; font-size: 1.02rem; }
    tr:nth-child(even) td { background: #212940;}
    a { color: #ffd857; text-decoration: underline; }
    a:hover { color: #fff; background: #2462ea; }
    .no-result { color: #ffd857aa; font-size: 1.0rem; margin-top: 16px;}
    .error-box { color: #fff; line-height: 1.6; margin-top: 16px; }
    .error-box h2 { color: #ffd857; }
    @media (max-width: 700px) {
        .main-wrap { padding: 10px 1vw; }
        table, th, td { font-size: 0.95rem; }
        h1 { font-size: 1.4rem; }
        .title-row { flex-direction: column; gap: 8px;}
    }
</style>
<script>
    function quickSearch(val) {
        document.getElementById('keyword').value = val;
        document.getElementById('company_filter').value = '';
        document.getElementById('search-form').submit();
    }
</script>
</head>
<body>
<div class="main-wrap">
    <div class="title-row">
        <h1>亞瑞特案例庫搜尋</h1>
        <form id="search-form" method="get" action="/">
            <input type="text" id="keyword" name="keyword" placeholder="輸入關鍵字（同時比對 Company / Title）" value="{{.Keyword}}">
            <input type="hidden" id="company_filter" name="company_filter" value="{{.CompanyFilter}}">
            <button type="submit">搜尋</button>
        </form>
    </div>

    <div class="category-bar">
        {{range .Categories}}
        <button type="button" class="chip {{if eq $.Keyword .}}selected{{end}}" onclick="quickSearch('{{.}}')">{{.}}</button>
        {{end}}
    </div>

    {{if and .Keyword .Companies}}
    <form method="get" id="company-form" class="filter-row">
        <input type="hidden" name="keyword" value="{{.Keyword}}">
        <label for="company_select">篩選公司/品牌：</label>
        <select id="company_select" name="company_filter" onchange="document.getElementById('company-form').submit();">
            <option value="" {{if not .CompanyFilter}}selected{{end}}>全部</option>
            {{range .Companies}}
                <option value="{{.}}" {{if eq $.CompanyFilter .}}selected{{end}}>{{.}}</option>
            {{end}}
        </select>
    </form>
    {{end}}

    {{if .LoadError}}
    <div class="error-box">
        <h2>⚠️ 無法讀取資料</h2>
        <p>{{.LoadError}}</p>
        {{if .LoadHints}}
        <ol>
            {{range .LoadHints}}<li>{{.}}</li>{{end}}
        </ol>
        {{end}}
    </div>
    {{end}}

    {{if .QueryError}}
    <div class="error-box">
        <h2>⚠️ 查詢發生錯誤</h2>
        <p>{{.QueryError}}</p>
    </div>
    {{end}}

    {{if and .Keyword (not .QueryError) (not .LoadError)}}
        {{if .Rows}}
            <div class="count-row">🔍 條件：<b>{{.Keyword}}</b>{{if .CompanyFilter}}｜公司：<b>{{.CompanyFilter}}</b>{{end}} ｜ 符合 <b>{{len .Rows}}</b> 筆</div>
            <div style="overflow-x: auto;">
            <table>
                <thead>
                    <tr>
                        {{range .Columns}}<th>{{.}}</th>{{end}}
                    </tr>
                </thead>
                <tbody>
                    {{range $row := .Rows}}
                    <tr>
                        {{range $col := $.Columns}}
                        <td>
                            {{$v := $row.Get $col}}
                            {{if isLink $v}}<a href="{{$v}}" target="_blank">{{$v}}</a>{{else}}{{$v}}{{end}}
                        </td>
                        {{end}}
                    </tr>
                    {{end}}
                </tbody>
            </table>
            </div>
        {{else}}
            <div class="no-result">❌ 找不到任何符合「{{.Keyword}}{{if .CompanyFilter}}／{{.CompanyFilter}}{{end}}」的資料。</div>
        {{end}}
    {{end}}
</div>
</body>
</html>{{end}}`

const chatTemplate = `{{define "chat.html"}}<!DOCTYPE html>
<html lang="zh-Hant">
<head>
<meta charset="UTF-8">
<title>GPT-OSS 聊天助手</title>
<style>
    body { font-family: Arial, sans-serif; background: #121212; color: #fff; margin: 0; }
    .chat-wrap { max-width: 720px; margin: 40px auto; background: #191919; border-radius: 16px; padding: 32px; }
    h1 { color: #ffd857; }
    textarea { width: 100%; min-height: 100px; background: #222; color: #fff; border: 2px solid #2462ea; border-radius: 8px; padding: 10px; font-size: 1rem; }
    button { background: #2462ea; color: #fff; border: none; padding: 10px 24px; border-radius: 8px; font-size: 1.05rem; cursor: pointer; font-weight: 900; margin-top: 10px; }
    .reply { margin-top: 20px; white-space: pre-wrap; line-height: 1.6; }
    .error { color: #ff7a7a; margin-top: 20px; }
    .notice { color: #ffd857; margin-top: 20px; }
</style>
</head>
<body>
<div class="chat-wrap">
    <h1>🧠 GPT-OSS 聊天助手</h1>
    {{if not .Configured}}
    <div class="notice">尚未設定聊天 API 金鑰（ARETE_CHAT_API_KEY）。</div>
    {{end}}
    <textarea id="message" placeholder="請輸入你的訊息 👇"></textarea>
    <button id="send" onclick="sendMessage()">送出對話</button>
    <div id="reply" class="reply"></div>
    <div id="error" class="error"></div>
</div>
<script>
    async function sendMessage() {
        const message = document.getElementById('message').value;
        const reply = document.getElementById('reply');
        const errorBox = document.getElementById('error');
        reply.textContent = '';
        errorBox.textContent = '';
        if (!message.trim()) { errorBox.textContent = '請先輸入訊息！'; return; }
        try {
            const resp = await fetch('/api/v1/chat', {
                method: 'POST',
                headers: {'Content-Type': 'application/json'},
                body: JSON.stringify({message: message})
            });
            const data = await resp.json();
            if (!resp.ok) { errorBox.textContent = data.error || '發生錯誤'; return; }
            reply.textContent = '🗣️ ' + data.reply;
        } catch (e) {
            errorBox.textContent = '發生錯誤：' + e;
        }
    }
</script>
</body>
</html>{{end}}`

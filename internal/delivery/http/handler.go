package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/areteselect/backend/internal/domain"
	"github.com/areteselect/backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	cases       *usecase.CaseService
	chat        domain.ChatClient
	debugSecret string
}

// NewHandler creates a new HTTP handler. chat may be nil when no API key
// is configured; the chat endpoints then respond with 503.
func NewHandler(cases *usecase.CaseService, chat domain.ChatClient, debugSecret string) *Handler {
	return &Handler{
		cases:       cases,
		chat:        chat,
		debugSecret: debugSecret,
	}
}

// Healthz reports liveness without touching the remote spreadsheet, so
// connectivity and credential problems can be told apart from a dead
// process.
func (h *Handler) Healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Index renders the searchable case table. Categories load on every
// request to populate the chips; the search pipeline only runs when a
// keyword is present.
func (h *Handler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	keyword := strings.TrimSpace(c.Query("keyword"))
	companyFilter := strings.TrimSpace(c.Query("company_filter"))

	data := gin.H{
		"Keyword":       keyword,
		"CompanyFilter": companyFilter,
		"Categories":    []string{},
		"Companies":     []string{},
		"Columns":       []string{},
		"Rows":          []domain.Row{},
	}

	categories, err := h.cases.Categories(ctx)
	if err != nil {
		log.Printf("[WEB] category load failed: %v", err)
		data["Keyword"] = ""
		data["LoadError"] = "讀取 Google 試算表發生錯誤：" + err.Error()
		data["LoadHints"] = loadHints(err)
		c.HTML(http.StatusOK, "index.html", data)
		return
	}
	data["Categories"] = categories

	if keyword != "" {
		result, err := h.cases.Search(ctx, keyword, categories)
		if err != nil {
			log.Printf("[WEB] search failed for %q: %v", keyword, err)
			data["QueryError"] = err.Error()
			c.HTML(http.StatusOK, "index.html", data)
			return
		}

		rows := result.Rows
		data["Companies"] = usecase.CompanyOptions(rows)
		if companyFilter != "" {
			rows = usecase.FilterByCompany(rows, companyFilter)
		}
		data["Rows"] = rows
		data["Columns"] = usecase.PlanColumns(result.Fields)
	}

	c.HTML(http.StatusOK, "index.html", data)
}

// loadHints gives remediation steps for credential problems; generic
// fetch failures get no checklist.
func loadHints(err error) []string {
	if !errors.Is(err, domain.ErrCredentialMissing) && !errors.Is(err, domain.ErrCredentialInvalid) {
		return nil
	}
	return []string{
		"確認 CREDENTIALS_JSON 環境變數已設定，值為完整且合法的 JSON（不要加引號）。",
		"到 Google 試算表把服務帳戶的 client_email 加為 Viewer/Editor。",
		"重新部署後再試一次。",
	}
}

// DebugSheets dumps per-tab row counts and every distinct column header
// observed, for diagnosing schema drift. Guarded by a shared secret.
func (h *Handler) DebugSheets(c *gin.Context) {
	if h.debugSecret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "debug endpoint is not configured"})
		return
	}
	if c.Query("secret") != h.debugSecret {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	stats, fields, err := h.cases.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sheets": stats,
		"fields": fields,
	})
}

// ChatPage renders the single-page chat demo
func (h *Handler) ChatPage(c *gin.Context) {
	c.HTML(http.StatusOK, "chat.html", gin.H{
		"Configured": h.chat != nil,
	})
}

// chatRequest is the body of POST /api/v1/chat
type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatMessage forwards one message to the completion backend and returns
// the reply. No history is kept server-side.
func (h *Handler) ChatMessage(c *gin.Context) {
	if h.chat == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "chat is not configured (set ARETE_CHAT_API_KEY)"})
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := h.chat.Complete(c.Request.Context(), req.Message)
	if err != nil {
		log.Printf("[WEB] chat completion failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

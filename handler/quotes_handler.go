package handler

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"time"

	"smartbuddy/utils"

	"github.com/gin-gonic/gin"
)

// fallbackQuotes are served whenever the upstream quote API is slow or
// down. The motivation widget always gets something.
var fallbackQuotes = []gin.H{
	{"text": "Small steps every day add up to big results.", "author": "Unknown"},
	{"text": "Rest is part of the work.", "author": "Unknown"},
	{"text": "Focus on progress, not perfection.", "author": "Unknown"},
	{"text": "You can't pour from an empty cup.", "author": "Unknown"},
	{"text": "Done is better than perfect.", "author": "Unknown"},
}

type QuotesHandler struct {
	apiURL string
	client *http.Client
}

func NewQuotesHandler(apiURL string) *QuotesHandler {
	return &QuotesHandler{
		apiURL: apiURL,
		client: &http.Client{Timeout: 3 * time.Second},
	}
}

// GetQuote proxies the upstream quote API, falling back to the local list
// on any failure.
func (h *QuotesHandler) GetQuote(c *gin.Context) {
	if h.apiURL != "" {
		req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, h.apiURL, nil)
		if err == nil {
			resp, err := h.client.Do(req)
			if err == nil {
				defer resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					var quote struct {
						Text   string `json:"text"`
						Author string `json:"author"`
					}
					if err := json.NewDecoder(resp.Body).Decode(&quote); err == nil && quote.Text != "" {
						utils.Success(c, gin.H{"text": quote.Text, "author": quote.Author})
						return
					}
				}
			}
			if err != nil {
				log.Printf("Quote API unavailable: %v", err)
			}
		}
	}

	utils.Success(c, fallbackQuotes[rand.Intn(len(fallbackQuotes))])
}

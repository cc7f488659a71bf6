package errors

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewPayload struct {
	Rating  int    `json:"nota" binding:"required,min=1,max=5"`
	Comment string `json:"comentario" binding:"max=10"`
}

func TestRespondWithBindingError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	RegisterJSONTagNames()

	router := gin.New()
	router.POST("/reviews", func(c *gin.Context) {
		var req reviewPayload
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondWithBindingError(c, err)
			return
		}
		c.Status(http.StatusCreated)
	})

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantFields []string
	}{
		{name: "Valid", body: `{"nota":5}`, wantStatus: http.StatusCreated},
		{name: "Rating above range", body: `{"nota":6}`, wantStatus: http.StatusBadRequest, wantFields: []string{"nota"}},
		{name: "Rating missing", body: `{}`, wantStatus: http.StatusBadRequest, wantFields: []string{"nota"}},
		{name: "Two violations", body: `{"nota":0,"comentario":"muito longo aqui"}`, wantStatus: http.StatusBadRequest, wantFields: []string{"nota", "comentario"}},
		{name: "Wrong type", body: `{"nota":"cinco"}`, wantStatus: http.StatusBadRequest, wantFields: []string{"nota"}},
		{name: "Malformed", body: `{`, wantStatus: http.StatusBadRequest, wantFields: []string{"body"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusBadRequest {
				return
			}

			var resp ValidationError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, ValidationInvalidInput, resp.Error)
			for _, field := range tt.wantFields {
				assert.Contains(t, resp.Fields, field)
			}
		})
	}
}

package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/sentiric/sentiric-contact-service/internal/channel"
)

// callRequest is the JSON body of POST /v1/call.
type callRequest struct {
	Method string         `json:"method"`
	Args   map[string]any `json:"args"`
}

type callResponse struct {
	Result any            `json:"result,omitempty"`
	Error  *channel.Error `json:"error,omitempty"`
}

// NewHTTPServer builds the serving surface: a health endpoint and a JSON
// bridge onto the method-call channel.
func NewHTTPServer(port string, handler *channel.Handler, log zerolog.Logger) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "ok"}`)
	})

	mux.HandleFunc("/v1/call", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req callRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, callResponse{Error: &channel.Error{
				Code:    channel.CodeBadArgs,
				Message: "invalid request body",
				Details: err.Error(),
			}})
			return
		}

		done := make(chan callResponse, 1)
		handler.HandleCall(r.Context(), req.Method, req.Args, func(value any, cerr *channel.Error) {
			done <- callResponse{Result: value, Error: cerr}
		})

		select {
		case res := <-done:
			writeJSON(w, statusFor(res.Error), res)
		case <-r.Context().Done():
			log.Warn().Str("method", req.Method).Msg("İstek, sonuç teslim edilmeden iptal edildi")
		}
	})

	return &http.Server{Addr: fmt.Sprintf(":%s", port), Handler: mux}
}

func statusFor(cerr *channel.Error) int {
	if cerr == nil {
		return http.StatusOK
	}
	switch cerr.Code {
	case channel.CodeBadArgs, channel.CodeUnknownMethod, channel.CodeUnknownField, channel.CodeRange:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body callResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

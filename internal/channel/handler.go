package channel

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sentiric/sentiric-contact-service/internal/contact"
	"github.com/sentiric/sentiric-contact-service/internal/fetch"
	"github.com/sentiric/sentiric-contact-service/internal/logger"
	"github.com/sentiric/sentiric-contact-service/internal/service"
	"github.com/sentiric/sentiric-contact-service/internal/store"
)

// Machine codes of the structured error channel.
const (
	CodeBadArgs        = "BAD_ARGS"
	CodeUnknownMethod  = "UNKNOWN_METHOD"
	CodeUnknownField   = "UNKNOWN_FIELD"
	CodeRange          = "RANGE"
	CodePartitionQuery = "PARTITION_QUERY"
	CodeStoreAccess    = "STORE_ACCESS"
	CodeInternal       = "INTERNAL"
)

// Handler receives method calls from the transport and routes them to the
// contact service.
type Handler struct {
	svc  service.ContactService
	disp *Dispatcher
	log  zerolog.Logger
}

// NewHandler, Handler'ı başlatır.
func NewHandler(svc service.ContactService, disp *Dispatcher, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, disp: disp, log: log}
}

// HandleCall runs one method call. The work runs off the caller's goroutine;
// cb is invoked exactly once, on the dispatcher goroutine.
func (h *Handler) HandleCall(ctx context.Context, method string, args map[string]any, cb Callback) {
	callID := uuid.NewString()
	deliver := h.disp.Bind(callID, cb)

	l := h.log.With().Str("call_id", callID).Str("method", method).Logger()
	l.Debug().Str("event", logger.EventCallReceived).Msg("Metot çağrısı alındı")

	go func() {
		switch method {
		case "fetchAllContacts":
			names, err := stringSliceArg(args, "fields")
			if err != nil {
				deliver(nil, &Error{Code: CodeBadArgs, Message: err.Error()})
				return
			}
			count, err := h.svc.FetchAllContacts(ctx, names)
			if err != nil {
				deliver(nil, translate(err))
				return
			}
			deliver(count, nil)

		case "getAllContactsPage":
			from, err := intArg(args, "from")
			if err != nil {
				deliver(nil, &Error{Code: CodeBadArgs, Message: err.Error()})
				return
			}
			to, err := intArg(args, "to")
			if err != nil {
				deliver(nil, &Error{Code: CodeBadArgs, Message: err.Error()})
				return
			}
			page, err := h.svc.GetAllContactsPage(ctx, from, to)
			if err != nil {
				deliver(nil, translate(err))
				return
			}
			deliver(page, nil)

		case "clearFetchedContacts":
			h.svc.ClearFetchedContacts(ctx)
			deliver(true, nil)

		case "getContactImage":
			id, err := stringArg(args, "id")
			if err != nil {
				deliver(nil, &Error{Code: CodeBadArgs, Message: err.Error()})
				return
			}
			size := store.ImageThumbnail
			if v, ok := args["size"]; ok {
				s, ok := v.(string)
				if !ok || (store.ImageSize(s) != store.ImageThumbnail && store.ImageSize(s) != store.ImageFull) {
					deliver(nil, &Error{Code: CodeBadArgs, Message: fmt.Sprintf("invalid image size: %v", v)})
					return
				}
				size = store.ImageSize(s)
			}
			data, err := h.svc.GetContactImage(ctx, id, size)
			if err != nil {
				deliver(nil, translate(err))
				return
			}
			deliver(data, nil)

		default:
			deliver(nil, &Error{Code: CodeUnknownMethod, Message: fmt.Sprintf("unknown method: %q", method)})
		}
	}()
}

// translate maps service errors onto the structured error channel.
func translate(err error) *Error {
	code := CodeInternal

	var uf *contact.ErrUnknownField
	var re *fetch.ErrRange
	var pq *fetch.ErrPartitionQuery
	var sa *store.ErrStoreAccess
	switch {
	case errors.As(err, &uf):
		code = CodeUnknownField
	case errors.As(err, &re):
		code = CodeRange
	case errors.As(err, &pq):
		code = CodePartitionQuery
	case errors.As(err, &sa):
		code = CodeStoreAccess
	}

	out := &Error{Code: code, Message: err.Error()}
	if cause := errors.Unwrap(err); cause != nil {
		out.Details = cause.Error()
	}
	return out
}

// --- Argument decoding ---

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing argument: %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string", key)
	}
	return s, nil
}

// intArg accepts native ints and the float64 values JSON decoding produces.
func intArg(args map[string]any, key string) (int, error) {
	v, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("missing argument: %q", key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("argument %q must be an integer", key)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("argument %q must be an integer", key)
	}
}

func stringSliceArg(args map[string]any, key string) ([]string, error) {
	v, ok := args[key]
	if !ok {
		return nil, fmt.Errorf("missing argument: %q", key)
	}
	switch vs := v.(type) {
	case []string:
		return vs, nil
	case []any:
		out := make([]string, 0, len(vs))
		for _, e := range vs {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("argument %q must be a list of strings", key)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("argument %q must be a list of strings", key)
	}
}

package wheel

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"lucky_wheel/internal/api/httperr"
	"lucky_wheel/internal/converter"
	"lucky_wheel/internal/service"
	"lucky_wheel/pkg/resp"
)

const qrSize = 256

type HandlerDeps struct {
	Serv service.WheelService
	Log  *zap.SugaredLogger
}

type Handler struct {
	serv service.WheelService
	log  *zap.SugaredLogger
}

func NewHandler(deps HandlerDeps) *Handler {
	log := deps.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Handler{serv: deps.Serv, log: log}
}

// State is polled by displays: rotation, phase and the last result.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(h.serv.State(r.Context())))
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.serv.Spin(r.Context())
	if err != nil {
		httperr.Write(w, err, h.log)
		return
	}
	resp.WriteJSONResponse(w, http.StatusAccepted, converter.ToSpinResponse(*ticket))
}

func (h *Handler) Image(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.serv.RenderPNG(r.Context(), &buf); err != nil {
		httperr.Write(w, err, h.log)
		return
	}
	writePNG(w, buf.Bytes())
}

func (h *Handler) Layout(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLayoutResponse(h.serv.Layout(r.Context())))
}

// ResultQR encodes the last result so a winner can claim the prize at the
// booth.
func (h *Handler) ResultQR(w http.ResponseWriter, r *http.Request) {
	last, err := h.serv.LastResult(r.Context())
	if err != nil {
		httperr.Write(w, err, h.log)
		return
	}

	content := fmt.Sprintf("luckywheel:%s:%s", last.SpinID, last.Label)
	png, err := qrcode.Encode(content, qrcode.Medium, qrSize)
	if err != nil {
		httperr.Write(w, fmt.Errorf("encode qr: %w", err), h.log)
		return
	}
	writePNG(w, png)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			resp.WriteError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	records, err := h.serv.History(r.Context(), limit)
	if err != nil {
		httperr.Write(w, err, h.log)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(records))
}

// SpinByID serves one journal entry, e.g. the spin a claim QR points at.
func (h *Handler) SpinByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "spin id must be a uuid")
		return
	}

	rec, err := h.serv.GetSpin(r.Context(), id)
	if err != nil {
		httperr.Write(w, err, h.log)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinRecordResponse(*rec))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats(r.Context())))
}

func writePNG(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

package segments

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	dto "lucky_wheel/internal/api/dto/wheel"
	"lucky_wheel/internal/api/httperr"
	"lucky_wheel/internal/converter"
	"lucky_wheel/internal/middleware"
	"lucky_wheel/internal/service"
	"lucky_wheel/pkg/req"
	"lucky_wheel/pkg/resp"
)

type HandlerDeps struct {
	Serv service.WheelService
	Log  *zap.SugaredLogger
}

// Handler serves the segment editor. Every route sits behind operator auth.
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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	h.writeSegments(w, r, http.StatusOK)
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SegmentRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err = h.serv.AddSegment(r.Context(), payload.Label, payload.Color); err != nil {
		httperr.Write(w, err, h.log)
		return
	}
	h.logEdit(r, "add", "label", payload.Label, "color", payload.Color)
	h.writeSegments(w, r, http.StatusCreated)
}

func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}
	payload, err := req.Decode[dto.SegmentEditRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err = h.serv.EditSegment(r.Context(), converter.ToSegmentEdit(index, payload)); err != nil {
		httperr.Write(w, err, h.log)
		return
	}
	h.logEdit(r, "edit", "index", index, "field", payload.Field, "value", payload.Value)
	h.writeSegments(w, r, http.StatusOK)
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}
	if err := h.serv.RemoveSegment(r.Context(), index); err != nil {
		httperr.Write(w, err, h.log)
		return
	}
	h.logEdit(r, "remove", "index", index)
	h.writeSegments(w, r, http.StatusOK)
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.ClearSegments(r.Context()); err != nil {
		httperr.Write(w, err, h.log)
		return
	}
	h.logEdit(r, "clear")
	h.writeSegments(w, r, http.StatusOK)
}

func (h *Handler) Defaults(w http.ResponseWriter, r *http.Request) {
	segments, err := h.serv.ResetDefaults(r.Context())
	if err != nil {
		httperr.Write(w, err, h.log)
		return
	}
	h.logEdit(r, "defaults", "segments", len(segments))
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSegmentsResponse(segments))
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	segments, err := h.serv.SaveSegments(r.Context())
	if err != nil {
		httperr.Write(w, err, h.log)
		return
	}
	h.logEdit(r, "save", "segments", len(segments))
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSegmentsResponse(segments))
}

func (h *Handler) writeSegments(w http.ResponseWriter, r *http.Request, status int) {
	resp.WriteJSONResponse(w, status, converter.ToSegmentsResponse(h.serv.Segments(r.Context())))
}

// logEdit records which operator changed the wheel.
func (h *Handler) logEdit(r *http.Request, action string, kv ...any) {
	operator, _ := middleware.OperatorFromContext(r.Context())
	h.log.Infow("segments edited", append([]any{"operator", operator, "action", action}, kv...)...)
}

func indexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "segment index must be an integer")
		return 0, false
	}
	return index, true
}

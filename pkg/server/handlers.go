package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/mosaic/pkg/buildinfo"
	errs "github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/geom"
	"github.com/matzehuels/mosaic/pkg/layout"
	"github.com/matzehuels/mosaic/pkg/pipeline"
)

// =============================================================================
// Health
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cfg.Recorder.Snapshot())
}

// =============================================================================
// Pipeline
// =============================================================================

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := decode(w, r, &opts); err != nil {
		s.writeError(w, r, err)
		return
	}
	doc, hit, err := s.cfg.Runner.LayoutWithCacheInfo(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("X-Cache", cacheHeader(hit))
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := decode(w, r, &opts); err != nil {
		s.writeError(w, r, err)
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	res, err := s.cfg.Runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cacheHeader(res.CacheInfo.LayoutHit && res.CacheInfo.RenderHit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// QueryRequest asks for frames of a scene's layout. Rect selects every
// frame intersecting it; Item selects one cell; Section selects a section's
// container, header and footer.
type QueryRequest struct {
	pipeline.Options
	Rect    *geom.Rect        `json:"rect,omitempty"`
	Item    *layout.IndexPath `json:"item,omitempty"`
	Section *int              `json:"section,omitempty"`
}

// QueryResponse holds the answers for the fields set in a QueryRequest.
type QueryResponse struct {
	ContentSize geom.Size           `json:"content_size"`
	Attributes  []layout.Attributes `json:"attributes,omitempty"`
	Frame       *geom.Rect          `json:"frame,omitempty"`
	Container   *geom.Rect          `json:"container,omitempty"`
	Header      *geom.Rect          `json:"header,omitempty"`
	Footer      *geom.Rect          `json:"footer,omitempty"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Rect == nil && req.Item == nil && req.Section == nil {
		s.writeError(w, r, errs.New(errs.ErrCodeInvalidInput, "query needs rect, item or section"))
		return
	}
	if err := req.ValidateForLayout(); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := req.EffectiveScene().Builder(layout.WithLogger(s.cfg.Logger)).Prepare()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := QueryResponse{ContentSize: res.ContentSize()}
	if req.Rect != nil {
		resp.Attributes = res.FramesIntersecting(*req.Rect)
	}
	if req.Item != nil {
		f, ok := res.FrameForItem(*req.Item)
		if !ok {
			s.writeError(w, r, errs.New(errs.ErrCodeNotFound, "item %s not in layout", req.Item))
			return
		}
		resp.Frame = &f
	}
	if req.Section != nil {
		sec := *req.Section
		c, ok := res.ContainerFrame(sec)
		if !ok {
			s.writeError(w, r, errs.New(errs.ErrCodeNotFound, "section %d not in layout", sec))
			return
		}
		resp.Container = &c
		if h, ok := res.FrameForSupplementary(layout.KindHeader, sec); ok {
			resp.Header = &h
		}
		if f, ok := res.FrameForSupplementary(layout.KindFooter, sec); ok {
			resp.Footer = &f
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// Stored Layouts
// =============================================================================

func (s *Server) handleStore(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := decode(w, r, &opts); err != nil {
		s.writeError(w, r, err)
		return
	}
	doc, err := s.cfg.Runner.Layout(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rec, err := s.cfg.Store.Put(r.Context(), doc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/layouts/"+rec.ID)
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, r, errs.New(errs.ErrCodeInvalidInput, "invalid limit %q", v))
			return
		}
		limit = n
	}
	recs, err := s.cfg.Store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"layouts": recs})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.cfg.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.cfg.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

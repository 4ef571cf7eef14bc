package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/errors"
	"github.com/matzehuels/hydrodraw/pkg/geom"
	"github.com/matzehuels/hydrodraw/pkg/render"
	"github.com/matzehuels/hydrodraw/pkg/snap"
	"github.com/matzehuels/hydrodraw/pkg/workspace"
)

// SnapResponse reports the resolved point. Result is nil when nothing
// snapped and the cursor position should be used as is.
type SnapResponse struct {
	Snapped bool         `json:"snapped"`
	Result  *snap.Result `json:"result,omitempty"`
}

type splitRequest struct {
	ElementID string     `json:"element_id"`
	Point     geom.Point `json:"point"`
}

type splitAllRequest struct {
	ElementID string `json:"element_id"`
}

type trimRequest struct {
	ElementID string     `json:"element_id"`
	Click     geom.Point `json:"click"`
	Edges     []string   `json:"edges,omitempty"`
}

type extendRequest struct {
	ElementID  string      `json:"element_id"`
	Boundaries []string    `json:"boundaries,omitempty"`
	Pick       *geom.Point `json:"pick,omitempty"`
}

type constrainRequest struct {
	Start     geom.Point `json:"start"`
	End       geom.Point `json:"end"`
	Increment float64    `json:"increment,omitempty"`
}

type pointResponse struct {
	Point geom.Point `json:"point"`
}

func requireElement(id string) error {
	if id == "" {
		return errors.New(errors.ErrCodeInvalidInput, "element_id is required")
	}
	return nil
}

func (s *Server) snap(w http.ResponseWriter, r *http.Request) {
	var req workspace.SnapRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	res, ok, err := s.svc.Snap(r.Context(), chi.URLParam(r, "projectID"), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := SnapResponse{Snapped: ok}
	if ok {
		resp.Result = &res
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) split(w http.ResponseWriter, r *http.Request) {
	var req splitRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := requireElement(req.ElementID); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeChange(w, r)(s.svc.Split(r.Context(), chi.URLParam(r, "projectID"), req.ElementID, req.Point))
}

func (s *Server) splitAll(w http.ResponseWriter, r *http.Request) {
	var req splitAllRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := requireElement(req.ElementID); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeChange(w, r)(s.svc.SplitAll(r.Context(), chi.URLParam(r, "projectID"), req.ElementID))
}

func (s *Server) trim(w http.ResponseWriter, r *http.Request) {
	var req trimRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := requireElement(req.ElementID); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeChange(w, r)(s.svc.Trim(r.Context(), chi.URLParam(r, "projectID"), req.ElementID, req.Click, req.Edges))
}

func (s *Server) extend(w http.ResponseWriter, r *http.Request) {
	var req extendRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := requireElement(req.ElementID); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeChange(w, r)(s.svc.Extend(r.Context(), chi.URLParam(r, "projectID"), req.ElementID, req.Boundaries, req.Pick))
}

// writeChange returns a function that writes an operation's outcome.
func (s *Server) writeChange(w http.ResponseWriter, r *http.Request) func(workspace.Change, error) {
	return func(c workspace.Change, err error) {
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if c.Removed == nil {
			c.Removed = []string{}
		}
		if c.Added == nil {
			c.Added = []drawing.Element{}
		}
		writeJSON(w, http.StatusOK, c)
	}
}

func (s *Server) export(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Get(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	var opts []render.SVGOption
	if bg := q.Get("background"); bg != "" {
		opts = append(opts, render.WithBackground(bg))
	}
	if q.Get("hidden") == "true" || q.Get("hidden") == "1" {
		opts = append(opts, render.WithHiddenLayers())
	}
	if fit := q.Get("fit"); fit != "" {
		margin, err := strconv.ParseFloat(fit, 64)
		if err != nil {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "fit must be a number"))
			return
		}
		opts = append(opts, render.WithFit(margin))
	}
	svg := render.RenderSVG(p, opts...)

	var (
		body        []byte
		contentType string
	)
	switch format := chi.URLParam(r, "format"); format {
	case "svg":
		body, contentType = svg, "image/svg+xml"
	case "png":
		scale := 2.0
		if v := q.Get("scale"); v != "" {
			if scale, err = strconv.ParseFloat(v, 64); err != nil {
				s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "scale must be a number"))
				return
			}
		}
		body, err = render.ToPNG(svg, scale)
		contentType = "image/png"
	case "pdf":
		body, err = render.ToPDF(svg)
		contentType = "application/pdf"
	default:
		err = errors.New(errors.ErrCodeUnsupported, "unknown export format %q", format)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) ortho(w http.ResponseWriter, r *http.Request) {
	var req constrainRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pointResponse{Point: geom.ApplyOrtho(req.Start, req.End)})
}

func (s *Server) polar(w http.ResponseWriter, r *http.Request) {
	var req constrainRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Increment == 0 {
		writeJSON(w, http.StatusOK, pointResponse{Point: s.cfg.Polar(req.Start, req.End)})
		return
	}
	if req.Increment < 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "increment must be positive, got %v", req.Increment))
		return
	}
	writeJSON(w, http.StatusOK, pointResponse{Point: geom.ApplyPolar(req.Start, req.End, req.Increment)})
}

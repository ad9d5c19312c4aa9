package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/colorlens/colorlens/internal/imaging"
	"github.com/colorlens/colorlens/internal/palette"
)

// defaultColorCount is the number of dominant colors extracted when the
// request does not ask for a specific count.
const defaultColorCount = 5

// recognitionResponse is the success body of the recognition endpoint.
type recognitionResponse struct {
	Success   bool                 `json:"success"`
	Filename  string               `json:"filename"`
	NumColors int                  `json:"num_colors"`
	Colors    []palette.Descriptor `json:"colors"`
}

// errorResponse mirrors the success shape for failures.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// healthResponse is the body of the liveness check.
type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:  "OK",
		Message: "color recognition service is running",
	})
}

// handleRecognize accepts a multipart image upload and responds with its
// dominant colors.
//
// Form fields:
//   - image: the file to analyze (required, content type image/*)
//   - num_colors: desired color count, 1-10 (optional, default 5)
//   - region: restrict analysis to "x1,y1,x2,y2" (optional)
func (s *Server) handleRecognize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		// The multipart reader may wrap the MaxBytesReader error, so
		// match its message as well as the error type.
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
			s.writeError(w, http.StatusRequestEntityTooLarge, "uploaded file is too large")
			return
		}
		s.writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "missing image file field")
		return
	}
	defer file.Close()

	if ct := header.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		s.writeError(w, http.StatusBadRequest, "uploaded file is not an image")
		return
	}

	numColors := defaultColorCount
	if v := r.FormValue("num_colors"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > palette.MaxColors {
			s.writeError(w, http.StatusBadRequest, "num_colors must be an integer between 1 and 10")
			return
		}
		numColors = n
	}

	s.log.Debug("processing upload", "filename", header.Filename, "num_colors", numColors)

	img, err := imaging.Decode(file)
	if err != nil {
		s.log.Debug("decode failed", "filename", header.Filename, "error", err)
		s.writeError(w, http.StatusBadRequest, "could not decode image")
		return
	}

	if v := r.FormValue("region"); v != "" {
		region, err := imaging.ParseRegion(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if img, err = imaging.CropRegion(img, region); err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	img = imaging.Downsample(img, s.cfg.MaxPixels)
	img = imaging.Smooth(img, s.cfg.SmoothRadius)

	colors, err := palette.Extract(s.table, palette.NewRequest(numColors, imaging.Pixels(img)))
	if err != nil {
		if errors.Is(err, palette.ErrEmptyInput) {
			s.writeError(w, http.StatusBadRequest, "image has no pixels to process")
			return
		}
		s.log.Error("extraction failed", "filename", header.Filename, "error", err)
		s.writeError(w, http.StatusInternalServerError, "error processing image")
		return
	}

	s.writeJSON(w, http.StatusOK, recognitionResponse{
		Success:   true,
		Filename:  header.Filename,
		NumColors: len(colors),
		Colors:    colors,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("encoding response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Success: false, Error: msg})
}

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-qr-scanner/internal/app"
	"github.com/MKhiriev/go-qr-scanner/internal/logger"
	"github.com/MKhiriev/go-qr-scanner/internal/utils"
	"github.com/MKhiriev/go-qr-scanner/models"
)

// ImageFormField is the multipart field the image is uploaded in.
const ImageFormField = "image"

// defaultMaxUploadSize applies when the config leaves the limit unset.
const defaultMaxUploadSize = 10 << 20

func (h *Handler) scan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit := h.cfg.MaxUploadSize
	if limit <= 0 {
		limit = defaultMaxUploadSize
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	file, header, err := r.FormFile(ImageFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			log.Debug().Int64("limit", limit).Msg("upload too large")
			utils.WriteError(w, app.MsgImageTooLarge, http.StatusRequestEntityTooLarge)
		case errors.Is(err, http.ErrMissingFile):
			utils.WriteError(w, app.MsgImageRequired, http.StatusBadRequest)
		default:
			log.Debug().Err(err).Msg("invalid multipart form")
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		}
		return
	}
	defer file.Close()

	log.Debug().Str("filename", header.Filename).Int64("size", header.Size).Msg("image uploaded")

	codes, err := h.services.DetectionService.DetectUpload(r.Context(), file)
	if err != nil {
		status := statusFromError(err)
		utils.WriteError(w, messageFromStatus(status), status)
		return
	}

	if _, err = utils.WriteJSON(w, models.ScanResponse{Codes: codes}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.scan").Msg("error writing scan response")
	}
}

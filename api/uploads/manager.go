package uploads

import (
	"lahmah_server/services"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

const maxUploadSize = 10 << 20 // 10 MiB, matches the router body limit

type UploadRoutesManager struct {
	logger         *gecho.Logger
	storageService *services.StorageService
}

func NewUploadRoutesManager(
	logger *gecho.Logger,
	storageService *services.StorageService,
) *UploadRoutesManager {
	return &UploadRoutesManager{
		logger:         logger,
		storageService: storageService,
	}
}

func (urm *UploadRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/uploads", urm.Upload)
}

// Upload handles POST /uploads?bucket= with a multipart "file" part. The
// stored name is randomized but keeps the original extension.
func (urm *UploadRoutesManager) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		urm.logger.Warn("Failed to parse multipart form", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Invalid multipart upload"), gecho.Send())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("A file part named \"file\" is required"), gecho.Send())
		return
	}
	defer file.Close()

	bucket := r.URL.Query().Get("bucket")

	stored, err := urm.storageService.Save(bucket, header.Filename, file)
	if err != nil {
		urm.logger.Error("Failed to store upload",
			gecho.Field("bucket", bucket),
			gecho.Field("filename", header.Filename),
			gecho.Field("error", err),
		)
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to store upload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Created(w,
		gecho.WithMessage("Upload stored"),
		gecho.WithData(stored),
		gecho.Send(),
	)
}

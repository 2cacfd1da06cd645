package handling

import (
	"lahmah_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/MonkyMars/gecho/utils"
)

func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) *utils.Response {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	return gecho.InternalServerError(w, gecho.Send())
}

// WriteStoreError surfaces a failed store call. Native store payloads go out
// verbatim (code/message/detail); everything else becomes a generic 500 with
// the error text attached.
func WriteStoreError(w http.ResponseWriter, err error, msg string) {
	if payload, ok := lib.StorePayload(err); ok {
		gecho.InternalServerError(w,
			gecho.WithMessage(msg),
			gecho.WithData(payload),
			gecho.Send(),
		)
		return
	}

	gecho.InternalServerError(w,
		gecho.WithMessage(msg),
		gecho.WithData(err.Error()),
		gecho.Send(),
	)
}

package saludya

import (
	"errors"

	cerr "github.com/jonatanlavado-utec/saludya-client/internal/errors"
	"github.com/jonatanlavado-utec/saludya-client/internal/types"
)

// errNoSession marks operations that require an authenticated session.
var errNoSession = errors.New("no active session")

// Result is what every orchestration operation hands back to the UI:
// either success, or a user-facing message. No transport error, status
// code or stack trace ever crosses this boundary.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func ok() Result             { return Result{Success: true} }
func fail(msg string) Result { return Result{Success: false, Error: msg} }

// User-facing messages. The remote services answer in Spanish and so does
// the application; server-supplied detail always wins over these.
const (
	msgInvalidCredentials = "Credenciales inválidas"
	msgLoginFailed        = "Error al iniciar sesión"
	msgRegisterFailed     = "Error al registrar"
	msgUpdateFailed       = "Error al actualizar"
	msgServerError        = "Error en el servidor"
	msgNoConnection       = "No se pudo conectar."
	msgNoServerConnection = "No se pudo conectar con el servidor."
	msgNoSession          = "No hay sesión"
	msgPaymentFailed      = "No se pudo procesar el pago"

	// msgPaidButNotBooked reports the one state the client cannot fix on
	// its own: the charge went through and the booking did not. It must
	// reach the patient verbatim; only a support workflow can reconcile
	// an externally-charged, unbooked appointment.
	msgPaidButNotBooked = "El pago se realizó pero no se pudo registrar la cita. Por favor, contacta con soporte."
)

// failureMessage maps an internal error to the message shown to the
// patient. Precedence per field: server detail first, then the
// status-specific fallback, then the operation fallback; connectivity
// failures always collapse to the fixed connection message.
func failureMessage(err error, connectivity string, byStatus map[int]string, fallback string) string {
	if ve := types.AsValidation(err); ve != nil {
		return ve.Message
	}
	if re := cerr.AsRemote(err); re != nil {
		if re.Detail != "" {
			return re.Detail
		}
		if msg, ok := byStatus[re.StatusCode]; ok {
			return msg
		}
		return fallback
	}
	return connectivity
}

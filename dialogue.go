package saludya

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jonatanlavado-utec/saludya-client/catalog"
	"github.com/jonatanlavado-utec/saludya-client/internal/api"
	cerr "github.com/jonatanlavado-utec/saludya-client/internal/errors"
	"github.com/jonatanlavado-utec/saludya-client/internal/types"
)

// DialogueState is the assistant's conversational state.
type DialogueState string

const (
	// StateIdle: the next utterance is treated as a symptom description.
	StateIdle DialogueState = "idle"
	// StateAwaitingDoctorChoice: the next utterance answers "would you
	// like to see the doctors for this specialty?".
	StateAwaitingDoctorChoice DialogueState = "awaitingDoctorChoice"
)

// Assistant messages. Like the services, the assistant speaks Spanish.
const (
	msgGreeting = "¡Hola! Soy tu asistente de salud. Cuéntame tus síntomas y te ayudaré a encontrar la especialidad médica adecuada."

	msgDoctorsFound    = "Aquí tienes los médicos disponibles. Puedes elegir uno para agendar directamente, o también puedes agendar solo por especialidad."
	msgNoDoctorsFound  = "No encontré médicos disponibles para esa especialidad en este momento. Puedes agendar por especialidad."
	msgDeclined        = "Entendido. Si necesitas ayuda con otros síntomas, ¡cuéntame!"
	msgOrientationDown = "Ahora mismo no puedo analizar tus síntomas. Inténtalo de nuevo en unos momentos."
	msgAssistantError  = "Ha ocurrido un error al conectar con el asistente. Por favor, inténtalo nuevamente."

	defaultSpecialtyName = "Medicina General"
)

// Classifier decides whether a follow-up utterance is an affirmative
// answer. Anything that is not affirmative counts as a decline, never as
// an error.
type Classifier interface {
	Affirmative(text string) bool
}

// KeywordClassifier is the default Classifier: substring containment over
// the lowercased utterance against a fixed vocabulary.
type KeywordClassifier struct {
	keywords []string
}

// NewKeywordClassifier builds a classifier over keywords, defaulting to
// the assistant's built-in affirmative vocabulary.
func NewKeywordClassifier(keywords ...string) *KeywordClassifier {
	if len(keywords) == 0 {
		keywords = []string{"sí", "si", "ver", "mostrar", "ok"}
	}
	return &KeywordClassifier{keywords: keywords}
}

// Affirmative implements Classifier.
func (k *KeywordClassifier) Affirmative(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range k.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Reply is what one dialogue turn produces: the assistant's message and,
// on an affirmative follow-up, the doctors matching the recommended
// specialty.
type Reply struct {
	Message          types.ChatMessage
	SuggestedDoctors []types.Doctor
}

// Assistant is the recommendation dialogue: a two-state machine that
// turns free-text symptoms into a specialty recommendation and a
// yes/no follow-up into a filtered doctor list. The message log is
// append-only and ordered by call sequence.
type Assistant struct {
	httpClient  *http.Client
	urls        serviceURLs
	catalog     *catalog.Catalog
	session     *SessionManager
	classifier  Classifier
	typingDelay time.Duration
	log         clientLogger

	mu                        sync.RWMutex
	messages                  []types.ChatMessage
	state                     DialogueState
	lastSuggestedSpecialtyIDs []string
}

func newAssistant(c *Client) *Assistant {
	a := &Assistant{
		httpClient:  c.httpClient,
		urls:        c.urls,
		catalog:     c.catalog,
		session:     c.session,
		classifier:  c.classifier,
		typingDelay: c.typingDelay,
		log:         clientLogger{c.log},
		state:       StateIdle,
	}
	a.append(types.SenderAssistant, msgGreeting)
	return a
}

// Messages returns a copy of the append-only message log.
func (a *Assistant) Messages() []types.ChatMessage {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]types.ChatMessage, len(a.messages))
	copy(out, a.messages)
	return out
}

// State returns the current dialogue state.
func (a *Assistant) State() DialogueState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// Send processes one user utterance. The utterance is appended to the log
// before any remote call, so a slow collaborator can never reorder the
// chat history. Blank input is ignored.
func (a *Assistant) Send(ctx context.Context, text string) Reply {
	text = strings.TrimSpace(text)
	if text == "" {
		return Reply{}
	}
	a.append(types.SenderUser, text)

	if a.State() == StateAwaitingDoctorChoice {
		return a.handleDoctorChoice(ctx, text)
	}
	return a.handleSymptoms(ctx, text)
}

// handleDoctorChoice resolves the yes/no follow-up. Affirmative filters
// the catalog by the previously recommended specialty ids; anything else
// is a decline. Either way the machine returns to idle.
func (a *Assistant) handleDoctorChoice(ctx context.Context, text string) Reply {
	a.pause(ctx)

	a.mu.Lock()
	ids := a.lastSuggestedSpecialtyIDs
	a.state = StateIdle
	a.mu.Unlock()

	if !a.classifier.Affirmative(text) {
		return Reply{Message: a.append(types.SenderAssistant, msgDeclined)}
	}

	matched := a.catalog.DoctorsBySpecialtyID(ids)
	msg := msgNoDoctorsFound
	if len(matched) > 0 {
		msg = msgDoctorsFound
	}
	return Reply{
		Message:          a.append(types.SenderAssistant, msg),
		SuggestedDoctors: matched,
	}
}

// handleSymptoms forwards the symptom text to the orientation service and
// composes the recommendation reply. On any failure the machine emits an
// apology and stays idle; it never awaits a doctor choice it cannot honor.
func (a *Assistant) handleSymptoms(ctx context.Context, text string) Reply {
	req := types.OrientationRequest{Symptoms: text}
	if user, okUser := a.session.User(); okUser {
		req.UserID = user.ID
	}

	resp, err := api.Orient(ctx, a.httpClient, a.urls.orientation, req)
	if err != nil {
		orientationsTotal.WithLabelValues(outcomeFailure).Inc()
		a.log.warnErr(err, "symptom orientation failed")
		msg := msgAssistantError
		if cerr.AsRemote(err) != nil {
			msg = msgOrientationDown
		}
		a.setState(StateIdle, nil)
		return Reply{Message: a.append(types.SenderAssistant, msg)}
	}
	orientationsTotal.WithLabelValues(outcomeSuccess).Inc()

	specialtyName := resp.RecommendedSpecialty
	if specialtyName == "" {
		specialtyName = defaultSpecialtyName
	}

	var ids []string
	if sp, found := a.catalog.SpecialtyByName(specialtyName); found {
		ids = []string{sp.ID}
	}
	a.setState(StateAwaitingDoctorChoice, ids)

	return Reply{Message: a.append(types.SenderAssistant, composeRecommendation(specialtyName, resp.Explanation, resp.Comment))}
}

// composeRecommendation templates the assistant's reply. Explanation and
// comment are opaque display strings straight from the service.
func composeRecommendation(specialty, explanation, comment string) string {
	var b strings.Builder
	b.WriteString("Basándome en tus síntomas, te recomiendo consultar con:\n\n")
	b.WriteString("• **" + specialty + "**\n")
	if explanation != "" {
		b.WriteString("\n" + explanation + "\n")
	}
	if comment != "" {
		b.WriteString("\nNota: " + comment + "\n")
	}
	b.WriteString("\n¿Te gustaría ver los médicos disponibles para esta especialidad?")
	return b.String()
}

// append adds a message to the log and returns it.
func (a *Assistant) append(sender types.Sender, text string) types.ChatMessage {
	msg := types.ChatMessage{
		ID:        newMessageID(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
	}
	a.mu.Lock()
	a.messages = append(a.messages, msg)
	a.mu.Unlock()
	return msg
}

func (a *Assistant) setState(state DialogueState, specialtyIDs []string) {
	a.mu.Lock()
	a.state = state
	a.lastSuggestedSpecialtyIDs = specialtyIDs
	a.mu.Unlock()
}

// pause sleeps for the cosmetic typing delay, honoring cancellation.
func (a *Assistant) pause(ctx context.Context) {
	if a.typingDelay <= 0 {
		return
	}
	timer := time.NewTimer(a.typingDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

package services

// OutcomeKind enumerates the closed set of classified backend results.
type OutcomeKind int

const (
	Success OutcomeKind = iota
	RateLimited
	AuthFailed
	Forbidden
	Generic
	Transport
)

func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case RateLimited:
		return "rate_limited"
	case AuthFailed:
		return "auth_failed"
	case Forbidden:
		return "forbidden"
	case Generic:
		return "generic"
	case Transport:
		return "transport"
	default:
		return ""
	}
}

// Outcome is the classified result of a backend call.
//
// Payload is meaningful only when Kind is [Success]. RetryAfter (seconds) is
// set only for [RateLimited] and preserved exactly as the backend sent it.
type Outcome[T any] struct {
	Kind       OutcomeKind
	Payload    T
	Message    string
	RetryAfter int
}

// Succeeded reports whether the outcome carries a usable payload.
func (o Outcome[T]) Succeeded() bool {
	return o.Kind == Success
}

// statusEnvelope is the discriminator portion every backend response body
// carries on non-success paths.
type statusEnvelope struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
}

// Backend status discriminator values.
const (
	statusSuccess   = "success"
	statusRateLimit = "rate_limit"
	statusAuthError = "auth_error"
	statusForbidden = "forbidden"
)

// classify maps a non-success envelope onto the outcome taxonomy. Unknown
// statuses collapse into [Generic] with the backend message preserved.
func classify[T any](env statusEnvelope) Outcome[T] {
	message := env.Message
	if message == "" {
		message = "the server reported an error"
	}

	switch env.Status {
	case statusRateLimit:
		return Outcome[T]{Kind: RateLimited, Message: message, RetryAfter: env.RetryAfter}
	case statusAuthError:
		return Outcome[T]{Kind: AuthFailed, Message: message}
	case statusForbidden:
		return Outcome[T]{Kind: Forbidden, Message: message}
	default:
		return Outcome[T]{Kind: Generic, Message: message}
	}
}

func successOutcome[T any](payload T) Outcome[T] {
	return Outcome[T]{Kind: Success, Payload: payload}
}

func transportOutcome[T any](err error) Outcome[T] {
	return Outcome[T]{Kind: Transport, Message: err.Error()}
}

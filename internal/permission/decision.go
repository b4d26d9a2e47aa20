package permission

import (
	"strings"

	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
)

// DecisionKind unterscheidet Berechtigungsablehnungen von fachlich ungültigen Eingaben.
type DecisionKind int

const (
	KindPermission DecisionKind = iota
	KindInput
)

// Decision ist das Ergebnis einer Prüfung. Reason ist nur bei Ablehnung gesetzt und wird unverändert an den Client gegeben.
type Decision struct {
	Allowed bool
	Reason  string
	Kind    DecisionKind
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason, Kind: KindPermission}
}

func invalid(reason string) Decision {
	return Decision{Reason: reason, Kind: KindInput}
}

// AppError übersetzt eine Ablehnung in den passenden Anwendungsfehler; nil bei Erlaubnis.
func (d Decision) AppError() *app_errors.AppError {
	if d.Allowed {
		return nil
	}
	if d.Kind == KindInput {
		return app_errors.NewInvalidInput(d.Reason)
	}
	return app_errors.NewPermissionDenied(d.Reason)
}

// All wertet alle Entscheidungen aus, ohne abzubrechen, und verbindet die Gründe der Ablehnungen.
func All(decisions ...Decision) Decision {
	var reasons []string
	for _, d := range decisions {
		if !d.Allowed {
			reasons = append(reasons, d.Reason)
		}
	}
	if len(reasons) == 0 {
		return allow()
	}
	return deny(strings.Join(reasons, "; "))
}

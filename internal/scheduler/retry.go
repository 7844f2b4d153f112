package scheduler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// RetryPolicy limita as tentativas de busca de cada fonte do relatório
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// fetchWithRetry tenta a busca até o limite da política, esperando o backoff
// entre tentativas. Esgotadas as tentativas, a fonte é dada como indisponível
// (ok=false) em vez de propagar o erro: o relatório sai mesmo assim.
func fetchWithRetry[T any](ctx context.Context, policy RetryPolicy, source string, fetch func(context.Context) (T, error)) (T, bool) {
	var zero T

	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		value, err := fetch(ctx)
		if err == nil {
			return value, true
		}

		logrus.WithError(err).WithFields(logrus.Fields{
			"source":  source,
			"attempt": attempt,
			"max":     policy.MaxAttempts,
		}).Warn("Falha ao buscar fonte do relatório diário")

		if attempt < policy.MaxAttempts {
			logrus.WithField("backoff", policy.Backoff.String()).Info("Aguardando antes da próxima tentativa")
			select {
			case <-time.After(policy.Backoff):
			case <-ctx.Done():
				logrus.WithField("source", source).Warn("Contexto cancelado durante o backoff")
				return zero, false
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"source": source,
		"max":    policy.MaxAttempts,
	}).Error("Fonte do relatório diário esgotou as tentativas")
	return zero, false
}

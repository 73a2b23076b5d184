package di

import (
	"ExoScan/internal/classifier"
	"ExoScan/internal/handler/api"
	"ExoScan/pkg/config"
	xhttp "ExoScan/pkg/http"
	applogger "ExoScan/pkg/logger"
	"ExoScan/pkg/server"
)

// ProvideLogger creates the structured logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideThresholds loads the thresholds artifact once at startup. A bad or
// missing artifact degrades to the hardcoded defaults with a warn log; it is
// never fatal.
func ProvideThresholds(cfg *config.Config, l *applogger.Logger) classifier.Thresholds {
	t, err := classifier.LoadThresholds(cfg.Model.ArtifactPath)
	if err != nil {
		l.Warn("thresholds artifact unavailable, using defaults",
			applogger.String("path", cfg.Model.ArtifactPath),
			applogger.Error(err),
		)
		return t
	}
	l.Info("thresholds loaded",
		applogger.String("path", cfg.Model.ArtifactPath),
		applogger.Float64("exo_snr", t.ExoSNR),
		applogger.Float64("exo_depth", t.ExoDepth),
		applogger.Float64("candidate_snr", t.CandidateSNR),
		applogger.Float64("candidate_depth", t.CandidateDepth),
	)
	return t
}

// ProvideClassifier creates the threshold classifier.
func ProvideClassifier(t classifier.Thresholds) *classifier.Classifier {
	return classifier.New(t)
}

// ProvideClassifyHandler creates the HTTP handler for classification routes.
func ProvideClassifyHandler(l *applogger.Logger, clf *classifier.Classifier, cfg *config.Config) xhttp.Handler {
	return api.NewClassifyHandler(l, clf, cfg.Model.Version)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h xhttp.Handler) *server.App {
	return server.New(cfg, l, h)
}

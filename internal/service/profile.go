package service

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"resumeapi/internal/llm"
	"resumeapi/internal/model"
)

// ErrMissingAPIKey is returned when no provider key is configured.
var ErrMissingAPIKey = errors.New("OpenAI API key not found")

// ProfileService turns free-form profile text into a structured profile.
type ProfileService interface {
	// Parse returns the parsed profile, or the placeholder profile when the provider
	// fails or answers with something unusable. Only a missing key is an error.
	Parse(ctx context.Context, profileText string) (model.ParsedProfile, error)
}

type profileService struct {
	parser   llm.Parser
	log      logrus.FieldLogger
	outcomes *prometheus.CounterVec
}

func NewProfileService(parser llm.Parser, reg prometheus.Registerer, log logrus.FieldLogger) (ProfileService, error) {
	s := &profileService{
		parser: parser,
		log:    log,
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "profile_parse_total",
				Help: "Profile parse attempts by outcome.",
			},
			[]string{"outcome"},
		),
	}
	if err := reg.Register(s.outcomes); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *profileService) Parse(ctx context.Context, profileText string) (model.ParsedProfile, error) {
	res := s.parser.Parse(ctx, profileText)
	s.outcomes.WithLabelValues(res.Outcome.String()).Inc()

	switch res.Outcome {
	case llm.OutcomeParsed:
		p := res.Profile
		p.Fill()
		return p, nil
	case llm.OutcomeMissingCredential:
		return model.ParsedProfile{}, ErrMissingAPIKey
	default:
		s.log.WithError(res.Err).WithField("outcome", res.Outcome.String()).Warn("profile parse fell back to defaults")
		return model.DefaultProfile(), nil
	}
}

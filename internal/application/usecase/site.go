package usecase

import (
	"context"

	"github.com/dezh-tech/immortal/pkg/logger"

	"rodut"
	"rodut/internal/domain/ingest"
	"rodut/internal/domain/repository/contenthost"
)

// Site answers the unauthenticated informational endpoints.
type Site struct {
	host contenthost.Host
}

func NewSite(host contenthost.Host) *Site {
	return &Site{host: host}
}

func (s *Site) Version() string {
	return rodut.StringVersion()
}

func (s *Site) Title(ctx context.Context) (string, error) {
	title, err := s.host.SiteTitle(ctx)
	if err != nil {
		logger.Error("failed to read site title", "err", err)

		return "", ingest.Wrap(ingest.HostError, ingest.MsgTitleFailed, err)
	}

	return title, nil
}

package google

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

const (
	SpreadsheetsScope  = "https://www.googleapis.com/auth/spreadsheets"
	CloudVisionScope   = "https://www.googleapis.com/auth/cloud-vision"
	CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"
)

type ItfGoogle interface {
	ClientOption(ctx context.Context, scopes ...string) (option.ClientOption, error)
	ProjectID() string
}

type googleProvider struct {
	serviceAccount []byte
	projectID      string
}

// New parses the service-account JSON once so a malformed credential fails at
// startup instead of on the first receipt.
func New(serviceAccountJSON string) (ItfGoogle, error) {
	if serviceAccountJSON == "" {
		return nil, errors.New("google service account is required")
	}

	creds, err := google.CredentialsFromJSON(context.Background(), []byte(serviceAccountJSON), CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse google service account: %w", err)
	}

	return &googleProvider{
		serviceAccount: []byte(serviceAccountJSON),
		projectID:      creds.ProjectID,
	}, nil
}

func (g *googleProvider) ClientOption(ctx context.Context, scopes ...string) (option.ClientOption, error) {
	creds, err := google.CredentialsFromJSON(ctx, g.serviceAccount, scopes...)
	if err != nil {
		return nil, err
	}
	return option.WithCredentials(creds), nil
}

func (g *googleProvider) ProjectID() string {
	return g.projectID
}

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	sdk "github.com/bitwarden/sdk-go"
)

const (
	bwsMaxRetries     = 5
	bwsInitialBackoff = 500 * time.Millisecond
)

// BWSSecretsClient reads key/value secrets out of Bitwarden Secrets Manager.
type BWSSecretsClient struct {
	bw    sdk.BitwardenClientInterface
	orgID string
}

// NewBWSSecretsClient logs in with the given machine-account access token.
// Logins rejected with HTTP 429 are retried with exponential backoff.
func NewBWSSecretsClient(accessToken, orgID string) (*BWSSecretsClient, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, errors.New("bitwarden access token is empty")
	}
	if strings.TrimSpace(orgID) == "" {
		return nil, errors.New("bitwarden organization id is empty")
	}

	bw, err := sdk.NewBitwardenClient(nil, nil)
	if err != nil {
		return nil, fmt.Errorf("initialising Bitwarden SDK client: %w", err)
	}

	backoff := bwsInitialBackoff
	for attempt := 1; attempt <= bwsMaxRetries; attempt++ {
		err = bw.AccessTokenLogin(accessToken, nil)
		if err == nil {
			return &BWSSecretsClient{bw: bw, orgID: orgID}, nil
		}
		// sdk-go has no typed status error; match on the message.
		if !strings.Contains(err.Error(), "429") && !strings.Contains(err.Error(), "Too Many Requests") {
			bw.Close()
			return nil, fmt.Errorf("bitwarden access-token login failed: %w", err)
		}
		Logger.WithError(err).Warnf("Bitwarden login rate limited (attempt %d/%d), retrying in %v", attempt, bwsMaxRetries, backoff)
		time.Sleep(backoff)
		backoff *= 2
	}
	bw.Close()
	return nil, fmt.Errorf("bitwarden access-token login failed after %d attempts: %w", bwsMaxRetries, err)
}

func (c *BWSSecretsClient) Close() {
	if c != nil && c.bw != nil {
		c.bw.Close()
	}
}

// GetBWSSecrets returns every secret in the named project as KEY -> value.
func (c *BWSSecretsClient) GetBWSSecrets(projectName string) (map[string]string, error) {
	if strings.TrimSpace(projectName) == "" {
		return nil, errors.New("projectName must not be empty")
	}

	projects, err := c.bw.Projects().List(c.orgID)
	if err != nil {
		return nil, fmt.Errorf("listing Bitwarden projects: %w", err)
	}

	var projectID string
	for _, p := range projects.Data {
		if strings.EqualFold(p.Name, projectName) {
			projectID = p.ID
			break
		}
	}
	if projectID == "" {
		return nil, fmt.Errorf("project %q not found in organisation %s", projectName, c.orgID)
	}

	synced, err := c.bw.Secrets().Sync(c.orgID, nil)
	if err != nil {
		return nil, fmt.Errorf("syncing Bitwarden secrets: %w", err)
	}

	out := make(map[string]string)
	for _, s := range synced.Secrets {
		if s.ProjectID != nil && *s.ProjectID == projectID {
			out[s.Key] = s.Value
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no secrets found for project %q", projectName)
	}
	return out, nil
}

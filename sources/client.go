package sources

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/exoumoon/invar/config"
)

const modrinthBaseURL = "https://api.modrinth.com/v3"

// ProjectURL is the human-facing page for a project id or slug.
func ProjectURL(id string) string {
	return fmt.Sprintf("https://modrinth.com/project/%s", id)
}

// Registry is the remote side the resolver talks to. *Client is the
// real implementation; tests substitute their own.
type Registry interface {
	FetchProject(id string) (*Project, error)
	FetchVersions(id string) ([]*Version, error)
}

// Client is a blocking Modrinth API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: http.DefaultClient,
		baseURL:    modrinthBaseURL,
	}
}

// FetchProject retrieves a single project by id or slug.
func (c *Client) FetchProject(id string) (*Project, error) {
	var project Project
	if err := c.getJSON(fmt.Sprintf("%s/project/%s", c.baseURL, id), &project); err != nil {
		return nil, fmt.Errorf("fetching project %q: %w", id, err)
	}
	return &project, nil
}

// FetchVersions retrieves every published version of a project.
func (c *Client) FetchVersions(id string) ([]*Version, error) {
	var versions []*Version
	if err := c.getJSON(fmt.Sprintf("%s/project/%s/version", c.baseURL, id), &versions); err != nil {
		return nil, fmt.Errorf("fetching versions of %q: %w", id, err)
	}
	return versions, nil
}

func (c *Client) getJSON(url string, target interface{}) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", config.UserAgent())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected response status %q", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}

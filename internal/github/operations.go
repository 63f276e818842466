package github

import (
	"context"
	"fmt"

	"github.com/wahlandcase/attuned.releasebot/internal/models"
)

const getPullRequestQuery = `
query getPullRequest($id: ID!) {
  node(id: $id) {
    ... on PullRequest {
      id
      number
      title
      url
      state
      labels(first: 100) { nodes { name } }
      mergeCommit { oid }
      repository { name }
    }
  }
}`

// GetPullRequest fetches a PR's metadata by node id.
func (c *Client) GetPullRequest(ctx context.Context, id string) (models.PullRequest, error) {
	var resp struct {
		Node *struct {
			ID     string `json:"id"`
			Number int    `json:"number"`
			Title  string `json:"title"`
			URL    string `json:"url"`
			State  string `json:"state"`
			Labels struct {
				Nodes []struct {
					Name string `json:"name"`
				} `json:"nodes"`
			} `json:"labels"`
			MergeCommit *struct {
				Oid string `json:"oid"`
			} `json:"mergeCommit"`
			Repository struct {
				Name string `json:"name"`
			} `json:"repository"`
		} `json:"node"`
	}
	if err := c.do(ctx, "getPullRequest", getPullRequestQuery, map[string]any{"id": id}, &resp); err != nil {
		return models.PullRequest{}, err
	}
	if resp.Node == nil || resp.Node.ID == "" {
		return models.PullRequest{}, fmt.Errorf("pull request %q: %w", id, ErrNotFound)
	}

	state, err := models.ParsePRState(resp.Node.State)
	if err != nil {
		return models.PullRequest{}, fmt.Errorf("pull request %q: %v: %w", id, err, ErrUpstream)
	}

	pr := models.PullRequest{
		ID:     resp.Node.ID,
		Number: resp.Node.Number,
		Title:  resp.Node.Title,
		URL:    resp.Node.URL,
		State:  state,
		Repo:   resp.Node.Repository.Name,
	}
	for _, l := range resp.Node.Labels.Nodes {
		pr.Labels = append(pr.Labels, l.Name)
	}
	if resp.Node.MergeCommit != nil {
		pr.MergeCommit = resp.Node.MergeCommit.Oid
	}
	return pr, nil
}

const getRepositoryIDQuery = `
query getRepositoryId($owner: String!, $name: String!) {
  repository(owner: $owner, name: $name) { id }
}`

// GetRepositoryID resolves a repository's node id.
func (c *Client) GetRepositoryID(ctx context.Context, owner, name string) (string, error) {
	var resp struct {
		Repository *struct {
			ID string `json:"id"`
		} `json:"repository"`
	}
	if err := c.do(ctx, "getRepositoryId", getRepositoryIDQuery, map[string]any{"owner": owner, "name": name}, &resp); err != nil {
		return "", err
	}
	if resp.Repository == nil || resp.Repository.ID == "" {
		return "", fmt.Errorf("repository %s/%s: %w", owner, name, ErrNotFound)
	}
	return resp.Repository.ID, nil
}

const createIssueMutation = `
mutation createIssue($repositoryId: ID!, $title: String!, $body: String!) {
  createIssue(input: {repositoryId: $repositoryId, title: $title, body: $body}) {
    issue { id title url }
  }
}`

// CreateIssue creates an issue and returns it.
func (c *Client) CreateIssue(ctx context.Context, repositoryID, title, body string) (models.TrackingIssue, error) {
	var resp struct {
		CreateIssue struct {
			Issue struct {
				ID    string `json:"id"`
				Title string `json:"title"`
				URL   string `json:"url"`
			} `json:"issue"`
		} `json:"createIssue"`
	}
	vars := map[string]any{"repositoryId": repositoryID, "title": title, "body": body}
	if err := c.do(ctx, "createIssue", createIssueMutation, vars, &resp); err != nil {
		return models.TrackingIssue{}, err
	}
	issue := resp.CreateIssue.Issue
	return models.TrackingIssue{ID: issue.ID, Title: issue.Title, URL: issue.URL}, nil
}

const searchProjectsQuery = `
query searchProjects($org: String!, $query: String!) {
  organization(login: $org) {
    projectsV2(query: $query, first: 20) {
      nodes { id title }
    }
  }
}`

// SearchProjects lists an organization's projects matching a search query.
func (c *Client) SearchProjects(ctx context.Context, org, query string) ([]models.Project, error) {
	var resp struct {
		Organization *struct {
			ProjectsV2 struct {
				Nodes []struct {
					ID    string `json:"id"`
					Title string `json:"title"`
				} `json:"nodes"`
			} `json:"projectsV2"`
		} `json:"organization"`
	}
	if err := c.do(ctx, "searchProjects", searchProjectsQuery, map[string]any{"org": org, "query": query}, &resp); err != nil {
		return nil, err
	}
	if resp.Organization == nil {
		return nil, fmt.Errorf("organization %q: %w", org, ErrNotFound)
	}

	projects := make([]models.Project, 0, len(resp.Organization.ProjectsV2.Nodes))
	for _, n := range resp.Organization.ProjectsV2.Nodes {
		projects = append(projects, models.Project{ID: n.ID, Title: n.Title})
	}
	return projects, nil
}

const getStatusFieldQuery = `
query getStatusField($projectId: ID!) {
  node(id: $projectId) {
    ... on ProjectV2 {
      field(name: "Status") {
        ... on ProjectV2SingleSelectField {
          id
          options { id name }
        }
      }
    }
  }
}`

// GetStatusField fetches a project's status field descriptor.
func (c *Client) GetStatusField(ctx context.Context, projectID string) (models.StatusField, error) {
	var resp struct {
		Node *struct {
			Field *struct {
				ID      string `json:"id"`
				Options []struct {
					ID   string `json:"id"`
					Name string `json:"name"`
				} `json:"options"`
			} `json:"field"`
		} `json:"node"`
	}
	if err := c.do(ctx, "getStatusField", getStatusFieldQuery, map[string]any{"projectId": projectID}, &resp); err != nil {
		return models.StatusField{}, err
	}
	if resp.Node == nil || resp.Node.Field == nil || resp.Node.Field.ID == "" {
		return models.StatusField{}, fmt.Errorf("project %q has no status field: %w", projectID, ErrNotFound)
	}

	field := models.StatusField{ID: resp.Node.Field.ID}
	for _, o := range resp.Node.Field.Options {
		field.Options = append(field.Options, models.StatusOption{ID: o.ID, Name: o.Name})
	}
	return field, nil
}

const addItemMutation = `
mutation addItem($projectId: ID!, $contentId: ID!) {
  addProjectV2ItemById(input: {projectId: $projectId, contentId: $contentId}) {
    item { id }
  }
}`

// AddItem adds a PR or issue to a project. The API is idempotent: adding an
// already-present subject returns the existing item id.
func (c *Client) AddItem(ctx context.Context, projectID, contentID string) (string, error) {
	var resp struct {
		AddProjectV2ItemByID struct {
			Item struct {
				ID string `json:"id"`
			} `json:"item"`
		} `json:"addProjectV2ItemById"`
	}
	vars := map[string]any{"projectId": projectID, "contentId": contentID}
	if err := c.do(ctx, "addItem", addItemMutation, vars, &resp); err != nil {
		return "", err
	}
	return resp.AddProjectV2ItemByID.Item.ID, nil
}

const setItemStatusMutation = `
mutation setItemStatus($projectId: ID!, $itemId: ID!, $fieldId: ID!, $optionId: String!) {
  updateProjectV2ItemFieldValue(input: {
    projectId: $projectId,
    itemId: $itemId,
    fieldId: $fieldId,
    value: {singleSelectOptionId: $optionId}
  }) {
    projectV2Item { id }
  }
}`

// SetItemStatus sets a project item's status field to the given option.
func (c *Client) SetItemStatus(ctx context.Context, projectID, itemID, fieldID, optionID string) error {
	vars := map[string]any{
		"projectId": projectID,
		"itemId":    itemID,
		"fieldId":   fieldID,
		"optionId":  optionID,
	}
	return c.do(ctx, "setItemStatus", setItemStatusMutation, vars, nil)
}

const deleteItemMutation = `
mutation deleteItem($projectId: ID!, $itemId: ID!) {
  deleteProjectV2Item(input: {projectId: $projectId, itemId: $itemId}) {
    deletedItemId
  }
}`

// DeleteItem removes an item from a project.
func (c *Client) DeleteItem(ctx context.Context, projectID, itemID string) error {
	vars := map[string]any{"projectId": projectID, "itemId": itemID}
	return c.do(ctx, "deleteItem", deleteItemMutation, vars, nil)
}

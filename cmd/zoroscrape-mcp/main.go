package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// searchResponse mirrors the zoroscrape search response.
type searchResponse struct {
	Results []struct {
		ID string `json:"id"`
	} `json:"results"`
}

// animeInfoResponse mirrors the zoroscrape detail response.
type animeInfoResponse struct {
	Name        string `json:"name"`
	Synopsis    string `json:"synopsis"`
	PosterImage string `json:"poster_image"`
}

// errorResponse mirrors the zoroscrape error body.
type errorResponse struct {
	Error *struct {
		Code           string `json:"code"`
		Message        string `json:"message"`
		UpstreamStatus int    `json:"upstream_status"`
	} `json:"error"`
}

func main() {
	apiURL := os.Getenv("ZORO_API_URL")
	if apiURL == "" {
		apiURL = "http://127.0.0.1:8000"
	}

	s := newServer(strings.TrimRight(apiURL, "/"))
	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func newServer(apiURL string) *server.MCPServer {
	s := server.NewMCPServer(
		"zoroscrape",
		"0.1.0",
		server.WithToolCapabilities(false),
	)

	searchTool := mcp.NewTool("search_anime",
		mcp.WithDescription("Search zoro.to for an anime title and return the matching title IDs. Pass an ID to anime_info for details."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Title keyword, e.g. 'Jujutsu Kaisen'"),
		),
	)
	s.AddTool(searchTool, handleSearch(apiURL))

	infoTool := mcp.NewTool("anime_info",
		mcp.WithDescription("Get the name, synopsis and poster image URL of an anime by its zoro.to ID."),
		mcp.WithString("anime_id",
			mcp.Required(),
			mcp.Description("Title ID as returned by search_anime, e.g. 'jujutsu-kaisen-tv-534'"),
		),
		mcp.WithString("synopsis_format",
			mcp.Description("Synopsis rendering: 'text' (default), 'markdown' or 'html'"),
			mcp.Enum("text", "markdown", "html"),
		),
	)
	s.AddTool(infoTool, handleAnimeInfo(apiURL))

	return s
}

// apiGet sends a GET request to the zoroscrape API. A non-2xx answer is
// turned into an error carrying the API's error code.
func apiGet(ctx context.Context, client *http.Client, apiURL, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != nil {
			return nil, fmt.Errorf("[%s] %s", errResp.Error.Code, errResp.Error.Message)
		}
		return nil, fmt.Errorf("API returned HTTP %d", resp.StatusCode)
	}
	return body, nil
}

func handleSearch(apiURL string) server.ToolHandlerFunc {
	client := &http.Client{Timeout: 30 * time.Second}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError("name is required"), nil
		}

		body, err := apiGet(ctx, client, apiURL, "/zoro/"+url.PathEscape(name))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var resp searchResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse response: %v", err)), nil
		}

		if len(resp.Results) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No titles found for %q.", name)), nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Found %d titles for %q:\n", len(resp.Results), name)
		for _, r := range resp.Results {
			fmt.Fprintf(&b, "- %s\n", r.ID)
		}
		return mcp.NewToolResultText(b.String()), nil
	}
}

func handleAnimeInfo(apiURL string) server.ToolHandlerFunc {
	client := &http.Client{Timeout: 30 * time.Second}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		animeID, err := request.RequireString("anime_id")
		if err != nil {
			return mcp.NewToolResultError("anime_id is required"), nil
		}
		format := request.GetString("synopsis_format", "text")

		path := "/zoro/info/" + url.PathEscape(animeID) + "?synopsis_format=" + url.QueryEscape(format)
		body, err := apiGet(ctx, client, apiURL, path)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var info animeInfoResponse
		if err := json.Unmarshal(body, &info); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse response: %v", err)), nil
		}

		result := fmt.Sprintf("Title: %s\nPoster: %s\n\n%s", info.Name, info.PosterImage, info.Synopsis)
		return mcp.NewToolResultText(result), nil
	}
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

// reportcli is a terminal browser for completed interviews. Recruiters
// point it at a running sortify server and page through candidate
// reports without opening the web dashboard.
func main() {
	_ = godotenv.Load()

	apiUrl := flag.String("api", "http://localhost:8080", "sortify server base URL")
	token := flag.String("token", os.Getenv("SORTIFY_TOKEN"), "JWT bearer token")
	flag.Parse()

	if *token == "" {
		fmt.Println("Please provide a JWT via the -token flag or SORTIFY_TOKEN env var.")
		os.Exit(1)
	}

	client := newApiClient(*apiUrl, *token)
	interviews, err := client.listInterviews()
	if err != nil {
		log.Fatal(err)
	}

	p := tea.NewProgram(initialModel(client, interviews))
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type apiClient struct {
	baseUrl    string
	token      string
	httpClient *http.Client
}

func newApiClient(baseUrl, token string) *apiClient {
	return &apiClient{
		baseUrl:    baseUrl,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type interviewBrief struct {
	UUID       string   `json:"uuid"`
	Role       string   `json:"role"`
	Mode       string   `json:"mode"`
	FinalScore *float64 `json:"final_score"`
	Completed  bool     `json:"completed"`
	Suspended  bool     `json:"suspended"`
	CreatedAt  string   `json:"created_at"`
}

type interviewDetail struct {
	interviewBrief
	Transcript    string `json:"transcript"`
	FinalReport   string `json:"final_report"`
	SuspendReason string `json:"suspend_reason"`
}

func (c *apiClient) get(path string, data any) error {
	req, err := http.NewRequest(http.MethodGet, c.baseUrl+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var envelope struct {
		Status  string          `json:"status"`
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("unexpected response from %s: %s", path, string(body))
	}
	if envelope.Status != "success" {
		return fmt.Errorf("%s: %s", path, envelope.Message)
	}
	return json.Unmarshal(envelope.Data, data)
}

func (c *apiClient) listInterviews() ([]interviewBrief, error) {
	var interviews []interviewBrief
	if err := c.get("/interviews", &interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}

func (c *apiClient) getInterview(uuid string) (*interviewDetail, error) {
	var detail interviewDetail
	if err := c.get("/interviews/"+uuid, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

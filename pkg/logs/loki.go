package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/medera/medera_backend/config"
)

// lokiWriter ships each formatted log line to the Loki push API. It sits
// behind a JSON slog handler, so one Write call is one record.
type lokiWriter struct {
	pushURL  string
	username string
	password string
	client   *http.Client
	stream   map[string]string
}

func newLokiHandler(cfg *config.Config, level slog.Level) slog.Handler {
	lw := &lokiWriter{
		pushURL:  strings.TrimSuffix(cfg.Logging.Output.Loki.Endpoint, "/") + "/loki/api/v1/push",
		username: cfg.Logging.Output.Loki.Username,
		password: cfg.Logging.Output.Loki.Password,
		client:   &http.Client{Timeout: 3 * time.Second},
		stream: map[string]string{
			"service": cfg.Observability.ServiceName,
			"env":     cfg.Server.Environment,
		},
	}
	return slog.NewJSONHandler(lw, &slog.HandlerOptions{Level: level})
}

type lokiPush struct {
	Streams []lokiStream `json:"streams"`
}

type lokiStream struct {
	Stream map[string]string `json:"stream"`
	Values [][2]string       `json:"values"`
}

func (lw *lokiWriter) Write(p []byte) (int, error) {
	entry := [2]string{
		strconv.FormatInt(time.Now().UnixNano(), 10),
		strings.TrimRight(string(p), "\n"),
	}
	body, err := json.Marshal(lokiPush{
		Streams: []lokiStream{{Stream: lw.stream, Values: [][2]string{entry}}},
	})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(http.MethodPost, lw.pushURL, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if lw.username != "" {
		req.SetBasicAuth(lw.username, lw.password)
	}

	resp, err := lw.client.Do(req)
	if err != nil {
		// Loki being down must not take the logger with it.
		return len(p), nil
	}
	resp.Body.Close()
	return len(p), nil
}

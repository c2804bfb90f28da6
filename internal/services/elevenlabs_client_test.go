package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newElevenLabsTestClient(t *testing.T, handler http.HandlerFunc) VoiceClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Setenv("ELEVENLABS_API_KEY", "test-key")
	t.Setenv("ELEVENLABS_BASE_URL", server.URL)
	client, err := NewElevenLabsClient(newTestLogger(t))
	if err != nil {
		t.Fatalf("NewElevenLabsClient: %v", err)
	}
	return client
}

func TestNewElevenLabsClientRequiresKey(t *testing.T) {
	t.Setenv("ELEVENLABS_API_KEY", "")
	if _, err := NewElevenLabsClient(newTestLogger(t)); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}

func TestElevenLabsAddVoice(t *testing.T) {
	sample := []byte("fake-audio-bytes")
	client := newElevenLabsTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/voices/add" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("xi-api-key"); got != "test-key" {
			t.Errorf("xi-api-key = %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("name"); got != "Mom" {
			t.Errorf("name field = %q", got)
		}
		file, header, err := r.FormFile("files")
		if err != nil {
			t.Fatalf("files field: %v", err)
		}
		defer file.Close()
		if header.Filename != "sample.mp3" {
			t.Errorf("filename = %q", header.Filename)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(file); err != nil {
			t.Fatalf("read file part: %v", err)
		}
		if !bytes.Equal(buf.Bytes(), sample) {
			t.Errorf("sample bytes do not round-trip")
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"voice_id": "v-123"})
	})

	voiceID, err := client.AddVoice(context.Background(), "Mom", "Voice profile for Mom", sample, "sample.mp3")
	if err != nil {
		t.Fatalf("AddVoice: %v", err)
	}
	if voiceID != "v-123" {
		t.Fatalf("voiceID = %q, want v-123", voiceID)
	}
}

func TestElevenLabsSynthesize(t *testing.T) {
	audio := []byte{0xff, 0xfb, 0x90}
	client := newElevenLabsTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/v1/text-to-speech/") {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req synthesizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Text != "Once upon a time" {
			t.Errorf("text = %q", req.Text)
		}
		if req.ModelID != "eleven_monolingual_v1" {
			t.Errorf("model_id = %q", req.ModelID)
		}
		if req.VoiceSettings.Stability != 0.5 || req.VoiceSettings.SimilarityBoost != 0.5 {
			t.Errorf("voice settings = %+v", req.VoiceSettings)
		}
		_, _ = w.Write(audio)
	})

	got, err := client.Synthesize(context.Background(), "v-123", "Once upon a time")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if !bytes.Equal(got, audio) {
		t.Fatalf("audio bytes do not round-trip")
	}
}

func TestElevenLabsSynthesizeErrors(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		client := newElevenLabsTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"detail":"invalid voice"}`, http.StatusBadRequest)
		})
		_, err := client.Synthesize(context.Background(), "nope", "hi")
		var httpErr *ProviderHTTPError
		if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusBadRequest {
			t.Fatalf("err = %v, want 400 *ProviderHTTPError", err)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		client := newElevenLabsTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		_, err := client.Synthesize(context.Background(), "v", "hi")
		var malformed *MalformedPayloadError
		if !errors.As(err, &malformed) {
			t.Fatalf("err = %v, want *MalformedPayloadError", err)
		}
	})
}

func TestElevenLabsListVoices(t *testing.T) {
	client := newElevenLabsTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/voices" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"voices": []map[string]string{
				{"voice_id": "v-1", "name": "Mom"},
				{"voice_id": "v-2", "name": "Dad"},
			},
		})
	})

	voices, err := client.ListVoices(context.Background())
	if err != nil {
		t.Fatalf("ListVoices: %v", err)
	}
	if len(voices) != 2 || voices[0].VoiceID != "v-1" || voices[1].Name != "Dad" {
		t.Fatalf("voices = %+v", voices)
	}
}

// Package config loads runtime settings for the server and the terminal
// client from environment variables, optionally seeded from .env files.
package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Server holds the backend settings.
type Server struct {
	Addr       string
	DBPath     string
	JWTSecret  string
	TokenTTL   time.Duration
	PublicURL  string
	MaxUpload  int64
	CORSOrigin string

	// ASREngine selects the transcription engine: "hf", "openai" or "" (none).
	ASREngine  string
	ASRModel   string
	HFURL      string
	HFToken    string
	OpenAIKey  string
	ASRTimeout time.Duration
}

// Client holds the terminal client settings.
type Client struct {
	ServerURL      string
	TranscribeURL  string
	FileField      string
	UploadTimeout  time.Duration
	PersistTimeout time.Duration
	VaultDir       string

	RecordFormat string
	RecordDevice string
	RecordDir    string

	BiometricHardware bool
	BiometricEnrolled bool
}

// DefaultASRModel is the fine-tuned Whisper model served through
// Hugging Face inference.
const DefaultASRModel = "p29ris/whisper-tiny-step1300"

const defaultHFURL = "https://api-inference.huggingface.co/models/" + DefaultASRModel

// LoadServer reads Server settings from the environment.
func LoadServer() Server {
	return Server{
		Addr:       getEnv("SCRIBE_ADDR", ":8080"),
		DBPath:     getEnv("DB_PATH", "./data/scribe.db"),
		JWTSecret:  getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:   getDuration("TOKEN_TTL", 24*time.Hour),
		PublicURL:  getEnv("PUBLIC_URL", "http://localhost:8080"),
		MaxUpload:  getInt64("MAX_UPLOAD_BYTES", 25<<20),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		ASREngine:  strings.ToLower(getEnv("ASR_ENGINE", "hf")),
		ASRModel:   getEnv("ASR_MODEL", DefaultASRModel),
		HFURL:      getEnv("HF_INFERENCE_URL", defaultHFURL),
		HFToken:    os.Getenv("HF_API_TOKEN"),
		OpenAIKey:  os.Getenv("OPENAI_API_KEY"),
		ASRTimeout: getDuration("ASR_TIMEOUT", 5*time.Minute),
	}
}

// LoadClient reads Client settings from the environment.
func LoadClient() Client {
	server := strings.TrimRight(getEnv("SCRIBE_SERVER", "http://localhost:8080"), "/")
	home, _ := os.UserHomeDir()
	return Client{
		ServerURL:         server,
		TranscribeURL:     getEnv("SCRIBE_TRANSCRIBE_URL", server+"/upload_and_transcribe"),
		FileField:         getEnv("SCRIBE_FILE_FIELD", "audio_file"),
		UploadTimeout:     getDuration("SCRIBE_UPLOAD_TIMEOUT", 5*time.Minute),
		PersistTimeout:    getDuration("SCRIBE_PERSIST_TIMEOUT", 30*time.Second),
		VaultDir:          getEnv("SCRIBE_VAULT_DIR", filepath.Join(home, ".scribe", "vault")),
		RecordFormat:      getEnv("SCRIBE_RECORD_FORMAT", defaultRecordFormat()),
		RecordDevice:      getEnv("SCRIBE_RECORD_DEVICE", defaultRecordDevice()),
		RecordDir:         getEnv("SCRIBE_RECORD_DIR", os.TempDir()),
		BiometricHardware: getBool("SCRIBE_BIOMETRIC_HARDWARE", true),
		BiometricEnrolled: getBool("SCRIBE_BIOMETRIC_ENROLLED", true),
	}
}

// LoadDotEnv loads KEY=value lines from each existing file into the process
// environment. Variables already set win over file contents.
func LoadDotEnv(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		f, err := os.Open(p)
		if err != nil {
			continue
		}
		scan := bufio.NewScanner(f)
		for scan.Scan() {
			key, val, ok := parseLine(scan.Text())
			if !ok {
				continue
			}
			if _, set := os.LookupEnv(key); set {
				continue
			}
			os.Setenv(key, val)
		}
		f.Close()
	}
}

// LoadDefaultDotEnv loads SCRIBE_ENV, ~/.scribe.env and ./.env when present.
func LoadDefaultDotEnv() {
	LoadDotEnv(strings.TrimSpace(os.Getenv("SCRIBE_ENV")))
	if home, err := os.UserHomeDir(); err == nil {
		LoadDotEnv(filepath.Join(home, ".scribe.env"))
	}
	LoadDotEnv(".env")
}

func parseLine(line string) (key, val string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")
	key, val, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	val = strings.TrimSpace(val)
	if key == "" {
		return "", "", false
	}
	if len(val) >= 2 {
		switch {
		case val[0] == '"' && val[len(val)-1] == '"':
			val = strings.ReplaceAll(val[1:len(val)-1], `\"`, `"`)
		case val[0] == '\'' && val[len(val)-1] == '\'':
			val = val[1 : len(val)-1]
		}
	}
	return key, val, true
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if n, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil && n > 0 {
		return n
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}

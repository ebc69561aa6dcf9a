package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/urielfortunato123-del/verdade-legal-br/pkg/llm"
)

func newTestTranscribeRouter(gateway llm.Gateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTranscribeHandler(gateway)
	r.POST("/transcribe-audio", h.Transcribe)
	return r
}

func postAudio(r *gin.Engine, contentType string, data []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="audio"; filename="gravacao"`)
	header.Set("Content-Type", contentType)
	part, _ := mw.CreatePart(header)
	part.Write(data)
	mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/transcribe-audio", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)
	return w
}

func TestTranscribe_MissingFile(t *testing.T) {
	gw := &fakeGateway{}
	r := newTestTranscribeRouter(gw)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/transcribe-audio", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, gw.calls)

	var res map[string]any
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Nenhum arquivo de áudio fornecido", res["error"])
}

func TestTranscribe_Success(t *testing.T) {
	gw := &fakeGateway{content: `{"transcript":"olá brasil","confidence":0.95,"language":"pt-BR"}`}
	r := newTestTranscribeRouter(gw)

	audio := []byte("fake-audio-bytes")
	w := postAudio(r, "audio/webm", audio)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, base64.StdEncoding.EncodeToString(audio), gw.lastReq.AudioBase64)
	assert.Equal(t, "webm", gw.lastReq.AudioFormat)

	var res TranscribeResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
	assert.Equal(t, "olá brasil", res.Transcript)
}

func TestTranscribe_PlainTextFallback(t *testing.T) {
	gw := &fakeGateway{content: "transcrição solta sem json"}
	r := newTestTranscribeRouter(gw)

	w := postAudio(r, "audio/mpeg", []byte("x"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mp3", gw.lastReq.AudioFormat)

	var res TranscribeResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "transcrição solta sem json", res.Transcript)
	assert.Equal(t, 0.8, res.Confidence)
	assert.Equal(t, "pt-BR", res.Language)
}

func TestTranscribe_OutOfCredits(t *testing.T) {
	gw := &fakeGateway{err: &llm.GatewayError{StatusCode: http.StatusPaymentRequired}}
	r := newTestTranscribeRouter(gw)

	w := postAudio(r, "audio/wav", []byte("x"))

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Equal(t, "wav", gw.lastReq.AudioFormat)

	var res map[string]any
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Créditos insuficientes.", res["error"])
}

func TestAudioFormat(t *testing.T) {
	assert.Equal(t, "webm", audioFormat("audio/webm;codecs=opus"))
	assert.Equal(t, "wav", audioFormat("audio/wav"))
	assert.Equal(t, "mp3", audioFormat("audio/mpeg"))
	assert.Equal(t, "mp3", audioFormat(""))
}

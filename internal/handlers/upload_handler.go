package handlers

import (
	"net/http"
	"strings"

	"gigflare/internal/ratelimit"
	"gigflare/utils"
)

type UploadHandler struct {
	Storage *utils.Storage
	Limit   *ratelimit.Limiter
}

type presignRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Folder      string `json:"folder"`
}

type presignResponse struct {
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
	Key       string `json:"key"`
}

var allowedUploadFolders = map[string]bool{
	"gigs":        true,
	"attachments": true,
	"avatars":     true,
}

func (h *UploadHandler) Presign(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	res := checkLimit(w, r, h.Limit, actor.ID)
	if !res.Allowed {
		writeError(w, http.StatusTooManyRequests, "Rate limit exceeded")
		return
	}

	var dto presignRequest
	if !readBody(w, r, &dto) {
		return
	}
	if strings.TrimSpace(dto.FileName) == "" {
		writeError(w, http.StatusBadRequest, "file_name is required")
		return
	}
	if dto.ContentType == "" {
		dto.ContentType = "application/octet-stream"
	}
	if dto.Folder == "" {
		dto.Folder = "gigs"
	}
	if !allowedUploadFolders[dto.Folder] {
		writeError(w, http.StatusBadRequest, "unknown upload folder")
		return
	}

	uploadURL, publicURL, key, err := h.Storage.PresignUpload(dto.Folder, dto.FileName, dto.ContentType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, presignResponse{UploadURL: uploadURL, PublicURL: publicURL, Key: key})
}

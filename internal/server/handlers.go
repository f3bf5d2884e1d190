package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/groupfbmap/groupmap/internal/aws/avatars"
	"github.com/groupfbmap/groupmap/internal/aws/storage"
	"github.com/groupfbmap/groupmap/internal/domains/dtos"
	"github.com/groupfbmap/groupmap/internal/domains/entities"
	"github.com/groupfbmap/groupmap/pkg/dither"
	"github.com/groupfbmap/groupmap/pkg/fburl"
	"github.com/groupfbmap/groupmap/pkg/logging"
	"github.com/groupfbmap/groupmap/pkg/token"
	"go.uber.org/zap"
)

func (s *server) handleUploadUrl(w http.ResponseWriter, r *http.Request) {
	var req dtos.UploadUrlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields: filename and contentType.")
		return
	}
	if !avatars.AllowedContentType(req.ContentType) {
		writeError(w, http.StatusBadRequest,
			"Invalid content type. Allowed types: "+strings.Join(avatars.AllowedContentTypes(), ", "))
		return
	}

	uploadUrl, key, err := s.avatars.PresignUpload(r.Context(), req.Filename, req.ContentType)
	if err != nil {
		logging.Error("failed to presign upload", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Could not generate upload URL.")
		return
	}

	writeJson(w, http.StatusOK, dtos.UploadUrlResponse{UploadUrl: uploadUrl, Key: key})
}

func (s *server) handleMemberAdd(w http.ResponseWriter, r *http.Request) {
	var req dtos.MemberCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format.")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields: first_name, group_profile_url, latitude, longitude.")
		return
	}

	groupId, memberId, err := fburl.ParseGroupProfile(req.GroupProfileUrl)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Facebook Group Profile URL format. Expected format: https://www.facebook.com/groups/{group_id}/user/{member_id}")
		return
	}

	member := entities.Member{
		GroupId:         groupId,
		MemberId:        memberId,
		FirstName:       req.FirstName,
		GroupProfileUrl: req.GroupProfileUrl,
		Latitude:        dither.Coordinate(*req.Latitude),
		Longitude:       dither.Coordinate(*req.Longitude),
		DeleteToken:     token.NewDeleteToken(),
		CreatedAt:       time.Now().UTC(),
	}
	if req.ProfilePictureS3Key != "" {
		if avatars.ValidObjectKey(req.ProfilePictureS3Key) {
			pictureUrl := s.avatars.PublicUrl(req.ProfilePictureS3Key)
			member.ProfilePictureUrl = &pictureUrl
		} else {
			logging.Warn(
				"dropping avatar key outside the avatar prefix",
				zap.String("key", req.ProfilePictureS3Key),
			)
		}
	}

	if err := s.members.PutMember(r.Context(), member); err != nil {
		logging.Error("failed to put member", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Could not add member entry.")
		return
	}

	writeJson(w, http.StatusCreated, dtos.MemberCreateResponse{DeleteToken: member.DeleteToken})
}

func (s *server) handleMemberList(w http.ResponseWriter, r *http.Request) {
	groupId := r.PathValue("group_id")
	if groupId == "" {
		writeError(w, http.StatusBadRequest, "Missing group_id path parameter.")
		return
	}

	members, err := s.members.FetchMembers(r.Context(), groupId)
	if err != nil {
		logging.Error("failed to fetch members", zap.String("group_id", groupId), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Could not retrieve group members.")
		return
	}

	writeJson(w, http.StatusOK, dtos.MemberViewsFromEntities(members))
}

func (s *server) handleMemberDelete(w http.ResponseWriter, r *http.Request) {
	var req dtos.MemberDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format.")
		return
	}
	if !token.ValidDeleteToken(req.DeleteToken) {
		writeError(w, http.StatusBadRequest, "Missing or invalid delete_token format.")
		return
	}

	member, err := s.members.GetMemberByDeleteToken(r.Context(), req.DeleteToken)
	if err != nil {
		if errors.Is(err, storage.ErrMemberNotFound) {
			writeError(w, http.StatusNotFound, "Delete token not found.")
			return
		}
		logging.Error("failed to look up delete token", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Error finding entry to delete.")
		return
	}

	// Best effort: a missing object or bad URL never blocks record deletion.
	if member.ProfilePictureUrl != nil {
		key, err := avatars.KeyFromUrl(*member.ProfilePictureUrl)
		if err != nil {
			logging.Warn("failed to parse avatar url", zap.String("url", *member.ProfilePictureUrl), zap.Error(err))
		} else if err := s.avatars.DeleteObject(r.Context(), key); err != nil {
			logging.Warn("failed to delete avatar object", zap.String("key", key), zap.Error(err))
		}
	}

	if err := s.members.DeleteMember(r.Context(), member.GroupId, member.MemberId); err != nil {
		logging.Error(
			"failed to delete member",
			zap.String("group_id", member.GroupId),
			zap.String("member_id", member.MemberId),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "Could not delete member entry.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJson(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("failed to write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJson(w, status, dtos.ErrorResponse{Error: message})
}

package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/mcdev12/faauction/go/internal/archive"
	"github.com/rs/zerolog/log"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) listArchives(w http.ResponseWriter, r *http.Request) {
	archives, err := h.apps.Archives.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, archives)
}

func (h *Handler) getArchive(w http.ResponseWriter, r *http.Request) {
	archiveID, ok := pathUUID(w, r, "archiveID")
	if !ok {
		return
	}
	a, err := h.apps.Archives.Get(r.Context(), archiveID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func pageFromQuery(w http.ResponseWriter, r *http.Request) (archive.Page, bool) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return archive.Page{}, false
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return archive.Page{}, false
	}
	return archive.Page{Limit: limit, Offset: offset}, true
}

func (h *Handler) listArchivePlayers(w http.ResponseWriter, r *http.Request) {
	archiveID, ok := pathUUID(w, r, "archiveID")
	if !ok {
		return
	}
	page, ok := pageFromQuery(w, r)
	if !ok {
		return
	}
	players, err := h.apps.Archives.ListPlayers(r.Context(), archiveID, page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, players)
}

func (h *Handler) listArchiveBids(w http.ResponseWriter, r *http.Request) {
	archiveID, ok := pathUUID(w, r, "archiveID")
	if !ok {
		return
	}
	page, ok := pageFromQuery(w, r)
	if !ok {
		return
	}
	bids, err := h.apps.Archives.ListBids(r.Context(), archiveID, page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bids)
}

// exportArchive buffers the workbook so a failure part way through still gets a JSON error.
func (h *Handler) exportArchive(w http.ResponseWriter, r *http.Request) {
	archiveID, ok := pathUUID(w, r, "archiveID")
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.apps.Archives.ExportXLSX(r.Context(), archiveID, &buf); err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="archive-%s.xlsx"`, archiveID))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Str("archive_id", archiveID.String()).Msg("failed to write archive export")
	}
}

func (h *Handler) createArchive(w http.ResponseWriter, r *http.Request) {
	var req archive.CreateArchiveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	a, err := h.apps.Archives.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *Handler) deleteArchive(w http.ResponseWriter, r *http.Request) {
	archiveID, ok := pathUUID(w, r, "archiveID")
	if !ok {
		return
	}
	if err := h.apps.Archives.Delete(r.Context(), archiveID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

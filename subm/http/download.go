package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/CIA-PoPS/HACKATHON-24-25/httpjson"
	"github.com/CIA-PoPS/HACKATHON-24-25/subm"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zip"
)

// Download serves a team's run artifacts: "log" is the raw scorer log
// (admins only), "zip" packs the team's per-stage log directory on demand.
func (h *SubmHttpHandler) Download(w http.ResponseWriter, r *http.Request) {
	extension := chi.URLParam(r, "extension")

	teamUuid := callerUuid(r)
	if teamUuid == uuid.Nil {
		httpjson.HandleError(slog.Default(), w, subm.ErrNotAuthenticated())
		return
	}

	account, err := h.users.GetAccount(r.Context(), teamUuid)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}
	if !account.IsVerified || !account.IsTeam {
		httpjson.WriteErrorJson(w, "not authorized",
			http.StatusForbidden, "not_authorized")
		return
	}

	filename := fmt.Sprintf("hackathon-24-25.%s", extension)

	switch extension {
	case "log":
		if !account.IsAdmin {
			httpjson.WriteErrorJson(w, "not authorized",
				http.StatusForbidden, "not_authorized")
			return
		}
		logPath := filepath.Join(h.dataDir, "logs", fmt.Sprintf("%s.log", teamUuid))
		h.serveFile(w, r, logPath, filename)
	case "zip":
		logDir := filepath.Join(h.dataDir, "logs", teamUuid.String())
		h.serveZippedDir(w, logDir, filename)
	default:
		httpjson.WriteErrorJson(w, "file not found",
			http.StatusNotFound, "file_not_found")
	}
}

func (h *SubmHttpHandler) serveFile(w http.ResponseWriter, r *http.Request, path string, filename string) {
	if _, err := os.Stat(path); err != nil {
		httpjson.WriteErrorJson(w, "file not found",
			http.StatusNotFound, "file_not_found")
		return
	}
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeFile(w, r, path)
}

func (h *SubmHttpHandler) serveZippedDir(w http.ResponseWriter, dir string, filename string) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		httpjson.WriteErrorJson(w, "file not found",
			http.StatusNotFound, "file_not_found")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", filename))

	zw := zip.NewWriter(w)
	defer zw.Close()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		entry, err := zw.Create(rel)
		if err != nil {
			return err
		}
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		_, err = io.Copy(entry, file)
		return err
	})
	if err != nil {
		// headers are already out; all we can do is log
		slog.Default().Error("failed to stream zip", "dir", dir, "error", err)
	}
}

// filepath: internal/services/export.go
package services

import (
	"archive/zip"
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"lumina/internal/models"
)

// archiveManifest describes the archive itself inside _metadata.json.
type archiveManifest struct {
	GeneratedAt time.Time `json:"generated_at"`
	PhotoCount  int       `json:"photo_count"`
}

// writeArchive streams photos as a ZIP archive containing a CSV index
// and a metadata manifest. Photo bytes live behind the external storage
// boundary, so the archive carries their content references.
func writeArchive(w io.Writer, photos []models.Photo) error {
	zipWriter := zip.NewWriter(w)
	defer zipWriter.Close()

	if err := writeManifestToZip(zipWriter, photos); err != nil {
		return err
	}
	return writeCSVToZip(zipWriter, photos)
}

func writeManifestToZip(zw *zip.Writer, photos []models.Photo) error {
	f, err := zw.Create("_metadata.json")
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(archiveManifest{
		GeneratedAt: time.Now().UTC(),
		PhotoCount:  len(photos),
	})
}

func writeCSVToZip(zw *zip.Writer, photos []models.Photo) error {
	f, err := zw.Create("photos.csv")
	if err != nil {
		return err
	}

	// BOM for Excel compatibility.
	f.Write([]byte{0xEF, 0xBB, 0xBF})

	csvWriter := csv.NewWriter(f)
	defer csvWriter.Flush()

	header := []string{"id", "filename", "category", "uploaded_at", "size_bytes", "url"}
	if err := csvWriter.Write(header); err != nil {
		return err
	}

	for _, p := range photos {
		row := []string{
			p.ID,
			p.Filename,
			p.Category,
			p.UploadedAt.Format(time.RFC3339),
			strconv.FormatInt(p.SizeBytes, 10),
			p.URL,
		}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}
	return nil
}

package health

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	exif "github.com/dsoprea/go-exif/v3"
)

// maxImageSize limits how much of an image is read for EXIF extraction.
const maxImageSize = 20 * 1024 * 1024

// Image extensions that can carry EXIF metadata.
var exifExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".heic": true,
}

// EXIFCheck scans the images under the site root for EXIF metadata that
// should not ship with a published site. GPS coordinates are the worst
// case: a screenshot or photo taken at a contributor's desk pins their
// location into the page assets.
type EXIFCheck struct{}

// NewEXIFCheck creates an EXIFCheck.
func NewEXIFCheck() *EXIFCheck {
	return &EXIFCheck{}
}

// Name returns the check name.
func (c *EXIFCheck) Name() string {
	return "exif"
}

// Check walks the site root and records findings for every image that
// carries EXIF metadata. Unreadable or EXIF-free images are skipped.
func (c *EXIFCheck) Check(ctx context.Context, data *Data) error {
	if data.SiteRoot == "" {
		return nil
	}

	return filepath.WalkDir(data.SiteRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // Unreadable entries are skipped, not fatal
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if d.IsDir() {
			name := d.Name()
			if path != data.SiteRoot && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !exifExtensions[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}

		rel, relErr := filepath.Rel(data.SiteRoot, path)
		if relErr != nil {
			rel = path
		}
		c.checkImage(path, filepath.ToSlash(rel), data)
		return nil
	})
}

// checkImage extracts EXIF entries from one image and records findings.
func (c *EXIFCheck) checkImage(path, rel string, data *Data) {
	info, err := os.Stat(path)
	if err != nil || info.Size() > maxImageSize {
		return
	}

	imageData, err := os.ReadFile(path) //nolint:gosec // Paths come from walking the user's site root
	if err != nil {
		return
	}

	rawExif, err := exif.SearchAndExtractExif(imageData)
	if err != nil || rawExif == nil {
		return
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return
	}

	flagged := false
	for _, entry := range entries {
		tagName := entry.TagName
		value := tagName + ": " + entry.Formatted

		switch tagName {
		case "GPSLatitude", "GPSLongitude", "GPSLatitudeRef", "GPSLongitudeRef":
			data.Report.AddFinding("exif_gps",
				"GPS Coordinates in Published Image",
				"An image under the site root embeds GPS coordinates in its EXIF metadata.",
				value, rel)
			flagged = true

		case "SerialNumber", "CameraSerialNumber", "BodySerialNumber", "LensSerialNumber":
			data.Report.AddFinding("exif_serial",
				"Device Serial Number in Published Image",
				"An image under the site root embeds a device serial number.",
				value, rel)
			flagged = true

		case "Make", "Model":
			data.Report.AddFinding("exif_camera",
				"Camera Information in Published Image",
				"An image under the site root embeds camera make/model information.",
				value, rel)
			flagged = true

		case "Software", "ProcessingSoftware":
			data.Report.AddFinding("exif_software",
				"Software Information in Published Image",
				"An image under the site root embeds editing-software information.",
				value, rel)
			flagged = true
		}
	}

	// Images with only unremarkable entries still get one summary finding.
	if !flagged && len(entries) > 0 {
		data.Report.AddFinding("exif_metadata",
			"EXIF Metadata in Published Image",
			"An image under the site root carries EXIF metadata.",
			"", rel)
	}
}

// Ensure EXIFCheck implements Check.
var _ Check = (*EXIFCheck)(nil)

package execution

import "github.com/reportgate/reportgate/core"

// remoteFormats maps the public format enum to the identifiers the remote
// rendering engine understands.
var remoteFormats = map[core.RenderFormat]string{
	core.FormatPDF:   "PDF",
	core.FormatExcel: "EXCELOPENXML",
	core.FormatWord:  "WORDOPENXML",
	core.FormatCSV:   "CSV",
	core.FormatXML:   "XML",
	core.FormatImage: "IMAGE",
}

var mimeTypes = map[core.RenderFormat]string{
	core.FormatPDF:   "application/pdf",
	core.FormatExcel: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	core.FormatWord:  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	core.FormatCSV:   "text/csv",
	core.FormatXML:   "text/xml",
	core.FormatImage: "image/tiff",
}

var fileExtensions = map[core.RenderFormat]string{
	core.FormatPDF:   "pdf",
	core.FormatExcel: "xlsx",
	core.FormatWord:  "docx",
	core.FormatCSV:   "csv",
	core.FormatXML:   "xml",
	core.FormatImage: "tif",
}

// RemoteFormat returns the remote identifier for format. The HTTP boundary
// validates against core.SupportedFormats before calling the orchestrator;
// anything that slips past anyway falls back to PDF.
func RemoteFormat(format core.RenderFormat) string {
	if remote, ok := remoteFormats[format]; ok {
		return remote
	}
	return "PDF"
}

// MimeType returns the response content type for format.
func MimeType(format core.RenderFormat) string {
	if mime, ok := mimeTypes[format]; ok {
		return mime
	}
	return "application/octet-stream"
}

// FileExtension returns the download filename extension for format.
func FileExtension(format core.RenderFormat) string {
	if ext, ok := fileExtensions[format]; ok {
		return ext
	}
	return "bin"
}

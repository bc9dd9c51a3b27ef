package order

import (
	"fmt"
	"strings"

	"printshop/internal/entities"
)

// MaxFileSize — предел размера одного документа.
const MaxFileSize = 50 << 20 // 50MB

// allowedMIMETypes: PDF, JPEG, PNG и документы Word (старый и новый формат).
var allowedMIMETypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

func isValidCustomerName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	return strings.TrimSpace(phone) != ""
}

func isValidColorMode(mode entities.ColorModeType) bool {
	switch mode {
	case entities.ColorModeBW, entities.ColorModeColor:
		return true
	default:
		return false
	}
}

// validateFile проверяет один файл независимо от остальных в пакете:
// нарушитель отклоняется с причиной, соседи по пакету не страдают.
func validateFile(f FileSubmission) error {
	if f.Size > MaxFileSize {
		return fmt.Errorf("%w: %s is larger than 50MB", ErrFileTooLarge, f.FileName)
	}
	if !allowedMIMETypes[f.ContentType] {
		return fmt.Errorf("%w: %s has type %s", ErrFileTypeNotAllowed, f.FileName, f.ContentType)
	}
	if f.Copies < 1 {
		return fmt.Errorf("%w: %s", ErrInvalidCopies, f.FileName)
	}
	if !isValidColorMode(f.ColorMode) {
		return fmt.Errorf("%w: %s", ErrInvalidColorMode, f.ColorMode)
	}
	return nil
}

package rules

import (
	"fmt"
	"strings"

	"github.com/catnipandroid/blog-checker/internal/annotate"
	"github.com/catnipandroid/blog-checker/internal/docx"
)

// videoHosts are the substrings that count as an embedded or linked video.
var videoHosts = []string{"youtube.com", "youtu.be", "vimeo.com", "video"}

// CheckMediaCount reports on embedded image count against the configured
// minimum and on video presence. Both findings are document-level notes.
func CheckMediaCount(doc *docx.Document, minImages int) []string {
	imgCount := doc.InlineMediaCount()
	fullText := doc.FullText()

	hasVideo := false
	for _, host := range videoHosts {
		if strings.Contains(fullText, host) {
			hasVideo = true
			break
		}
	}

	report := make([]string, 0, 2)
	if imgCount < minImages {
		annotate.NoticeAppend(doc,
			fmt.Sprintf("이미지 개수가 부족합니다. (현재 %d장 / 기준 %d장 이상)", imgCount, minImages))
		report = append(report, fmt.Sprintf("- [룰] 이미지 개수 부족: %d장 (기준 %d장)", imgCount, minImages))
	} else {
		report = append(report, fmt.Sprintf("- [룰] 이미지 개수 충족: %d장", imgCount))
	}

	if !hasVideo {
		report = append(report, "- [룰] 동영상 삽입 없음 (영상 1개 이상 권장)")
	} else {
		report = append(report, "- [룰] 동영상 URL 포함됨 (youtube 등)")
	}
	return report
}

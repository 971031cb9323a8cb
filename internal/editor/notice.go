package editor

import "fmt"

type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeWarning
)

// Notice is a blocking message the user has to acknowledge.
type Notice struct {
	Kind  NoticeKind
	Title string
	Text  string
}

func notFoundNotice(file string) Notice {
	return Notice{
		Kind:  NoticeWarning,
		Title: "File Not Found",
		Text:  fmt.Sprintf("The file %s was not found.", file),
	}
}

func loadErrorNotice() Notice {
	return Notice{Kind: NoticeWarning, Title: "Load Error", Text: "File is empty or not valid JSON."}
}

func updateCompleteNotice() Notice {
	return Notice{
		Kind:  NoticeInfo,
		Title: "Update Complete",
		Text:  "The data has been successfully initialized and updated.",
	}
}

func saveCompleteNotice() Notice {
	return Notice{Kind: NoticeInfo, Title: "Save Complete", Text: "The data has been successfully saved."}
}

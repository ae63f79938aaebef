package scrapers

import "code/core"

var titleListingRecords = []core.Record{
	{ID: "general-provisions", DisplayName: "General Provisions", Number: "", Name: "General Provisions", URL: "https://codes.ohio.gov/ohio-revised-code/general-provisions"},
	{ID: "title-1", DisplayName: "Title 1 | State Government", Number: "1", Name: "State Government", URL: "https://codes.ohio.gov/ohio-revised-code/title-1"},
	{ID: "title-3", DisplayName: "Title 3 | Counties", Number: "3", Name: "Counties", URL: "https://codes.ohio.gov/ohio-revised-code/title-3"},
}

// chapter-102 is a relative href and resolves against the site root.
var chapterListingRecords = []core.Record{
	{ID: "chapter-101", DisplayName: "Chapter 101 | General Assembly", Number: "101", Name: "General Assembly", URL: "https://codes.ohio.gov/ohio-revised-code/chapter-101"},
	{ID: "chapter-102", DisplayName: "Chapter 102 | Public Officers - Ethics", Number: "102", Name: "Public Officers - Ethics", URL: "https://codes.ohio.gov/chapter-102"},
}

var sectionListingRecords = []core.Record{
	{ID: "section-101.01", DisplayName: "Section 101.01 | Meeting of general assembly.", Number: "101.01", Name: "Meeting of general assembly.", URL: "https://codes.ohio.gov/ohio-revised-code/section-101.01"},
	{ID: "section-101.02", DisplayName: "Section 101.02 | Election of officers.", Number: "101.02", Name: "Election of officers.", URL: "https://codes.ohio.gov/ohio-revised-code/section-101.02"},
	{ID: "section-101.11", DisplayName: "Section 101.11 | Oath of office & duties.", Number: "101.11", Name: "Oath of office & duties.", URL: "https://codes.ohio.gov/ohio-revised-code/section-101.11"},
}

var noHeaderRecords = []core.Record{
	{ID: "chapter-301", DisplayName: "Chapter 301 | Organization", Number: "301", Name: "Organization", URL: "https://codes.ohio.gov/ohio-revised-code/chapter-301"},
	{ID: "chapter-302", DisplayName: "Chapter 302 | Board of County Commissioners", Number: "302", Name: "Board of County Commissioners", URL: "https://codes.ohio.gov/ohio-revised-code/chapter-302"},
}

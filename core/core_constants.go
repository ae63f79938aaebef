package core

func stringPtr(value string) *string {
	return &value
}

var TestSection1 = Section{
	DisplayName: "Section 1.01 | Ohio Revised Code.", Number: "1.01", Name: "Ohio Revised Code.",
	URL:         "https://codes.ohio.gov/ohio-revised-code/section-1.01",
	LastUpdated: stringPtr("January 1, 2020"), Content: stringPtr("Foo. Bar."), ContentFetched: true,
}

var TestSection2 = Section{
	DisplayName: "Section 1.02 | \"And\" may be read \"or\" & vice versa.", Number: "1.02", Name: "\"And\" may be read \"or\" & vice versa.",
	URL: "https://codes.ohio.gov/ohio-revised-code/section-1.02", ContentFetched: true,
}

var TestTitle1 = Title{
	ID: "title-1", DisplayName: "Title 1 | State Government", Number: "1", Name: "State Government",
	URL: "https://codes.ohio.gov/ohio-revised-code/title-1",
	Chapters: []Chapter{
		{
			DisplayName: "Chapter 1 | Definitions; Rules of Construction", Number: "1", Name: "Definitions; Rules of Construction",
			URL:      "https://codes.ohio.gov/ohio-revised-code/chapter-1",
			Sections: []Section{TestSection1, TestSection2},
		},
	},
}

var TestTitle3 = Title{
	ID: "title-3", DisplayName: "Title 3 | Counties", Number: "3", Name: "Counties",
	URL:      "https://codes.ohio.gov/ohio-revised-code/title-3",
	Chapters: []Chapter{},
}

// NewTestTitleMap holds title-3 before title-1 so ordering is observable.
func NewTestTitleMap() *TitleMap {
	titleMap := NewTitleMap()
	titleMap.Put(TestTitle3)
	titleMap.Put(TestTitle1)
	return titleMap
}

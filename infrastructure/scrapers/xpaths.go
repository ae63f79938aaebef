package scrapers

const (
	contentSectionSelector       = "section.laws-body"
	headerCellRelativeToRowXPath = "./th"
	headerCellsXPath             = "//table[contains(concat(' ', normalize-space(@class), ' '), ' laws-table ')]//th"
	hrefRelativeToRowXPath       = ".//a[@href]"
	lawsBodyXPath                = "//section[contains(concat(' ', normalize-space(@class), ' '), ' laws-body ')]"
	lawsTableRowsXPath           = "//table[contains(concat(' ', normalize-space(@class), ' '), ' laws-table ')]//tr"
	paragraphSelector            = "p"
)

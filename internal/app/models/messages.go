package models

// Messages shown to the user for each validation failure
const (
	MsgMinimumCourses        = "You must have at least one course."
	MsgEmptyInput            = "Please add at least one course."
	MsgMissingGrade          = "Please select a grade for all courses."
	MsgInvalidCredit         = "Please enter a valid positive credit for all courses."
	MsgInvalidGradeFormat    = "Invalid grade '%s' selected. Please choose from the list."
	MsgZeroCredits           = "Total credits cannot be zero. Please enter valid credits."
	MsgMismatchedPriorFields = "Please enter both your previous CPI and number of previous semesters, or leave both empty."
	MsgInvalidPriorAggregate = "Please enter a valid previous CPI between %s and %s."
	MsgInvalidPriorUnitCount = "Please enter a valid whole number of previous semesters (0 or more)."
	MsgCombinationFailed     = "Unable to calculate the new CPI. Please check your inputs."
)

package models

// ElectiveType names the student-selectable subject categories:
// Multidisciplinary Minor, Open Elective and Professional Elective.
type ElectiveType string

const (
	ElectiveMDM ElectiveType = "MDM"
	ElectiveOE  ElectiveType = "OE"
	ElectivePE  ElectiveType = "PE"
)

// ValidElectiveType reports whether the given type is one of MDM/OE/PE.
func ValidElectiveType(t ElectiveType) bool {
	switch t {
	case ElectiveMDM, ElectiveOE, ElectivePE:
		return true
	}
	return false
}

// ElectiveSelection keeps one slot per elective category for a student.
type ElectiveSelection struct {
	ID           string  `db:"id" json:"id"`
	StudentID    string  `db:"student_id" json:"student_id"`
	MDMID        *string `db:"mdm_id" json:"mdm_id,omitempty"`
	MDMFacultyID *string `db:"mdm_faculty_id" json:"mdm_faculty_id,omitempty"`
	OEID         *string `db:"oe_id" json:"oe_id,omitempty"`
	OEFacultyID  *string `db:"oe_faculty_id" json:"oe_faculty_id,omitempty"`
	PEID         *string `db:"pe_id" json:"pe_id,omitempty"`
	PEFacultyID  *string `db:"pe_faculty_id" json:"pe_faculty_id,omitempty"`
}

// SetSlot writes the subject/faculty pair into the slot for the given type.
func (s *ElectiveSelection) SetSlot(t ElectiveType, subjectID, facultyID string) {
	switch t {
	case ElectiveMDM:
		s.MDMID, s.MDMFacultyID = &subjectID, &facultyID
	case ElectiveOE:
		s.OEID, s.OEFacultyID = &subjectID, &facultyID
	case ElectivePE:
		s.PEID, s.PEFacultyID = &subjectID, &facultyID
	}
}

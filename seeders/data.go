package seeders

var teamsData = []struct {
	Name        string
	Description string
	Department  string
}{
	{Name: "Mechanics", Description: "Mechanical repairs and lubrication", Department: "Maintenance"},
	{Name: "Electricians", Description: "Electrical systems and wiring", Department: "Maintenance"},
	{Name: "IT Support", Description: "Workstations, printers, network gear", Department: "IT"},
}

var categoriesData = []string{
	"Production machinery",
	"Vehicles",
	"IT hardware",
	"HVAC",
}

var equipmentData = []struct {
	Name         string
	SerialNumber string
	Category     string
	Team         string
	Department   string
	Location     string
	Status       string
}{
	{Name: "Press-1", SerialNumber: "PRS-2021-001", Category: "Production machinery", Team: "Mechanics", Department: "Assembly", Location: "Hall A", Status: "active"},
	{Name: "Press-2", SerialNumber: "PRS-2021-002", Category: "Production machinery", Team: "Mechanics", Department: "Assembly", Location: "Hall A", Status: "active"},
	{Name: "Forklift FL-3", SerialNumber: "FLT-2019-003", Category: "Vehicles", Team: "Mechanics", Department: "Warehouse", Location: "Dock 2", Status: "active"},
	{Name: "CNC Lathe", SerialNumber: "CNC-2020-014", Category: "Production machinery", Team: "Electricians", Department: "Machining", Location: "Hall B", Status: "active"},
	{Name: "Office Printer", SerialNumber: "PRN-2018-021", Category: "IT hardware", Team: "IT Support", Department: "Office", Location: "Floor 2", Status: "inactive"},
	{Name: "Old Compressor", SerialNumber: "CMP-2009-007", Category: "HVAC", Team: "Mechanics", Department: "Utilities", Location: "Basement", Status: "scrapped"},
}

var requestsData = []struct {
	Subject       string
	Description   string
	Equipment     string
	Team          string
	Type          string
	Priority      string
	Stage         string
	ScheduledDate string
}{
	{Subject: "Hydraulic leak on main cylinder", Description: "Oil pooling under the press after each shift.", Equipment: "Press-1", Team: "Mechanics", Type: "corrective", Priority: "high", Stage: "new"},
	{Subject: "Quarterly lubrication", Description: "Scheduled preventive lubrication of all joints.", Equipment: "Press-2", Team: "Mechanics", Type: "preventive", Priority: "normal", Stage: "new", ScheduledDate: "2026-09-15"},
	{Subject: "Spindle vibration above tolerance", Description: "Operators report chatter marks on finished parts.", Equipment: "CNC Lathe", Team: "Electricians", Type: "corrective", Priority: "urgent", Stage: "in_progress"},
	{Subject: "Annual brake inspection", Description: "", Equipment: "Forklift FL-3", Team: "Mechanics", Type: "preventive", Priority: "normal", Stage: "repaired", ScheduledDate: "2026-06-01"},
	{Subject: "Paper feed jams constantly", Description: "Rollers worn out, replacement not economical.", Equipment: "Office Printer", Team: "IT Support", Type: "corrective", Priority: "low", Stage: "scrap"},
}

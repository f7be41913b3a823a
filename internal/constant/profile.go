package constant

type Position string

const (
	PositionCoordinator Position = "coordinator"
	PositionInstructor  Position = "instructor"
)

// DefaultState is the region preselected on registration forms.
const DefaultState = "IN-MH"

// stateNames maps ISO 3166-2:IN codes to display names, in the order the
// registration form lists them.
var stateNames = map[string]string{
	"IN-AP": "Andhra Pradesh",
	"IN-AR": "Arunachal Pradesh",
	"IN-AS": "Assam",
	"IN-BR": "Bihar",
	"IN-CT": "Chhattisgarh",
	"IN-GA": "Goa",
	"IN-GJ": "Gujarat",
	"IN-HR": "Haryana",
	"IN-HP": "Himachal Pradesh",
	"IN-JK": "Jammu and Kashmir",
	"IN-JH": "Jharkhand",
	"IN-KA": "Karnataka",
	"IN-KL": "Kerala",
	"IN-MP": "Madhya Pradesh",
	"IN-MH": "Maharashtra",
	"IN-MN": "Manipur",
	"IN-ML": "Meghalaya",
	"IN-MZ": "Mizoram",
	"IN-NL": "Nagaland",
	"IN-OR": "Odisha",
	"IN-PB": "Punjab",
	"IN-RJ": "Rajasthan",
	"IN-SK": "Sikkim",
	"IN-TN": "Tamil Nadu",
	"IN-TG": "Telangana",
	"IN-TR": "Tripura",
	"IN-UT": "Uttarakhand",
	"IN-UP": "Uttar Pradesh",
	"IN-WB": "West Bengal",
	"IN-AN": "Andaman and Nicobar Islands",
	"IN-CH": "Chandigarh",
	"IN-DN": "Dadra and Nagar Haveli",
	"IN-DD": "Daman and Diu",
	"IN-DL": "Delhi",
	"IN-LD": "Lakshadweep",
	"IN-PY": "Puducherry",
}

// StateName returns the display name for a region code. Unknown codes come
// back unchanged so a stale row still shows something in reports.
func StateName(code string) string {
	if name, ok := stateNames[code]; ok {
		return name
	}
	return code
}

func ValidState(code string) bool {
	_, ok := stateNames[code]
	return ok
}

var Departments = []string{
	"computer engineering",
	"information technology",
	"civil engineering",
	"electrical engineering",
	"mechanical engineering",
	"chemical engineering",
	"aerospace engineering",
	"biosciences and bioengineering",
	"electronics",
	"energy science and engineering",
}

var Titles = []string{
	"Professor",
	"Doctor",
	"Shriman",
	"Shrimati",
	"Kumari",
	"Mr",
	"Mrs",
	"Miss",
}

var ReferralSources = []string{
	"FOSSEE website",
	"Google",
	"Social Media",
	"From other College",
}

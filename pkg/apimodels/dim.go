package apimodels

// DIMLevel bounds how deep a hierarchical search result tree is populated,
// following the DICOM Information Model containment order.
type DIMLevel string

const (
	DIMLevelNone    DIMLevel = "none"
	DIMLevelPatient DIMLevel = "patient"
	DIMLevelStudy   DIMLevel = "study"
	DIMLevelSeries  DIMLevel = "series"
	DIMLevelImage   DIMLevel = "image"
)

// SearchDIMRequest is a search whose results are grouped into the
// patient/study/series/image hierarchy.
type SearchDIMRequest struct {
	SearchRequest

	// Depth bounds the populated hierarchy. Empty means the server default
	// (full depth).
	Depth DIMLevel
}

func (o *SearchDIMRequest) ToHTTPRequest() *HTTPRequest {
	r := o.SearchRequest.ToHTTPRequest()
	if o.Depth != "" {
		r.Params.Set("depth", string(o.Depth))
	}
	return r
}

// PatientResult is the top level of a hierarchical search result.
type PatientResult struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Gender    string        `json:"gender,omitempty"`
	BirthDate string        `json:"birthdate,omitempty"`
	NStudies  int           `json:"nStudies,omitempty"`
	Studies   []StudyResult `json:"studies,omitempty"`
}

type StudyResult struct {
	StudyInstanceUID string         `json:"studyInstanceUID"`
	StudyDate        string         `json:"studyDate,omitempty"`
	StudyDescription string         `json:"studyDescription,omitempty"`
	InstitutionName  string         `json:"institutionName,omitempty"`
	Modalities       string         `json:"modalities,omitempty"`
	Series           []SeriesResult `json:"series,omitempty"`
}

type SeriesResult struct {
	SerieInstanceUID string        `json:"serieInstanceUID"`
	SerieNumber      int           `json:"serieNumber,omitempty"`
	SerieModality    string        `json:"serieModality,omitempty"`
	SerieDescription string        `json:"serieDescription,omitempty"`
	Images           []ImageResult `json:"images,omitempty"`
}

type ImageResult struct {
	SOPInstanceUID string `json:"sopInstanceUID"`
	URI            string `json:"uri"`
	Number         int    `json:"number,omitempty"`
}

// SearchDIMResponse is the outcome of a hierarchical search.
type SearchDIMResponse struct {
	Results       []PatientResult `json:"results"`
	ElapsedTimeMs int64           `json:"elapsedTime"`
	NumResults    int             `json:"numResults"`
}

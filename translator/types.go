package translator

// LanguageModel describes a translation model hosted by the service.
// Models are created and owned server-side; the client only reads them.
type LanguageModel struct {
	ModelID      string `json:"model_id"`
	Source       string `json:"source"`
	Target       string `json:"target"`
	BaseModelID  string `json:"base_model_id"`
	Domain       string `json:"domain"`
	Customizable bool   `json:"customizable"`
	DefaultModel bool   `json:"default_model"`
	Owner        string `json:"owner"`
	Status       string `json:"status"`
	Name         string `json:"name"`
}

// IdentifiedLanguage is one ranked detection result. Confidence is in [0, 1]
// as reported by the service; the client does not re-sort or clamp it.
type IdentifiedLanguage struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

// IdentifiableLanguage is a language the service can recognize.
type IdentifiableLanguage struct {
	Language string `json:"language"`
	Name     string `json:"name"`
}

// Translation is a single translated output.
type Translation struct {
	Translation string `json:"translation"`
}

// TranslationResult is the full response of a translate call.
type TranslationResult struct {
	WordCount      int           `json:"word_count"`
	CharacterCount int           `json:"character_count"`
	Translations   []Translation `json:"translations"`
}

// ListModelsOptions filters ListModels. Zero-valued fields are omitted from
// the query string entirely; Default is tri-state via the pointer.
type ListModelsOptions struct {
	Default *bool
	Source  string
	Target  string
}

// CreateModelOptions configures a custom model derived from a base model.
// BaseModelID is required; each file blob becomes one multipart body part
// only when non-empty.
type CreateModelOptions struct {
	BaseModelID       string
	Name              string
	ForcedGlossary    []byte
	ParallelCorpus    []byte
	MonolingualCorpus []byte
}

// Wire envelopes for the collection endpoints.
type modelList struct {
	Models []LanguageModel `json:"models"`
}

type identifiedLanguageList struct {
	Languages []IdentifiedLanguage `json:"languages"`
}

type identifiableLanguageList struct {
	Languages []IdentifiableLanguage `json:"languages"`
}

type translateBody struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id,omitempty"`
	Source  string `json:"source,omitempty"`
	Target  string `json:"target,omitempty"`
}

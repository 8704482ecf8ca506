package entities

// ResourceKind различает виды физических ресурсов. Один generic-тип вместо
// трёх одинаковых путей кода для тягача/прицепа/водителя.
type ResourceKind string

const (
	ResourceTractor ResourceKind = "tractor"
	ResourceTrailer ResourceKind = "trailer"
	ResourceDriver  ResourceKind = "driver"
)

func (k ResourceKind) String() string {
	return string(k)
}

// ResourceRef — бронируемый ресурс как непрозрачный токен {вид, id}.
type ResourceRef struct {
	Kind ResourceKind
	ID   int64
}

// NewCandidateSet собирает непустые ссылки в фиксированном порядке:
// тягач, прицеп, водитель. Порядок определяет порядок сообщений о конфликтах.
func NewCandidateSet(tractorID, trailerID, driverID *int64) []ResourceRef {
	refs := make([]ResourceRef, 0, 3)
	if tractorID != nil {
		refs = append(refs, ResourceRef{Kind: ResourceTractor, ID: *tractorID})
	}
	if trailerID != nil {
		refs = append(refs, ResourceRef{Kind: ResourceTrailer, ID: *trailerID})
	}
	if driverID != nil {
		refs = append(refs, ResourceRef{Kind: ResourceDriver, ID: *driverID})
	}
	return refs
}

// ResourceHolding — строка реестра: ресурс, удерживающий его сервис и статус
// этого сервиса. Label — человекочитаемая подпись (госномер или имя водителя).
type ResourceHolding struct {
	Ref           ResourceRef
	Label         string
	ServiceID     int64
	ServiceStatus ServiceStatusType

	// Supplemental: ресурс удерживается дополнительной привязкой,
	// а не первичным назначением.
	Supplemental bool
}

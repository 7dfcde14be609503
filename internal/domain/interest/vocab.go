package interest

// The four fixed hobby categories.
const (
	CategorySports  = "운동"
	CategoryTravel  = "여행"
	CategoryCulture = "문화"
	CategoryLife    = "생활"
)

// categories in vector order.
var categories = [4]string{CategorySports, CategoryTravel, CategoryCulture, CategoryLife}

// keywordToCategory maps each vocabulary tag to its single category.
// Tags outside this map are still valid input; they contribute to
// similarity through exact keyword match only.
var keywordToCategory = map[string]string{
	// 운동 및 피트니스
	"골프":    CategorySports,
	"농구":    CategorySports,
	"러닝":    CategorySports,
	"서핑":    CategorySports,
	"스키":    CategorySports,
	"스노우보드": CategorySports,
	"스킨스쿠버": CategorySports,
	"야구":    CategorySports,
	"요가":    CategorySports,
	"헬스":    CategorySports,
	"자전거":   CategorySports,
	"축구":    CategorySports,
	"크로스핏":  CategorySports,
	"클라이밍":  CategorySports,
	"테니스":   CategorySports,
	"프리다이빙": CategorySports,
	"필라테스":  CategorySports,

	// 여행 및 야외활동
	"낚시":     CategoryTravel,
	"드라이브":   CategoryTravel,
	"등산":     CategoryTravel,
	"산책":     CategoryTravel,
	"맛집 투어":  CategoryTravel,
	"맛집":     CategoryTravel,
	"스포츠 관람": CategoryTravel,
	"여행":     CategoryTravel,
	"캠핑":     CategoryTravel,
	"파인 다이닝": CategoryTravel,

	// 문화 및 예술
	"게임":    CategoryCulture,
	"공연 관람": CategoryCulture,
	"공연":    CategoryCulture,
	"노래":    CategoryCulture,
	"댄스":    CategoryCulture,
	"그림":    CategoryCulture,
	"글쓰기":   CategoryCulture,
	"독서":    CategoryCulture,
	"웹툰":    CategoryCulture,
	"덕질":    CategoryCulture,
	"악기":    CategoryCulture,
	"사진":    CategoryCulture,
	"전시회":   CategoryCulture,
	"술":     CategoryCulture,
	"애니메이션": CategoryCulture,
	"영화":    CategoryCulture,
	"예능":    CategoryCulture,

	// 생활 및 자기관리
	"반려동물":   CategoryLife,
	"봉사활동":   CategoryLife,
	"인테리어":   CategoryLife,
	"자기 개발":  CategoryLife,
	"자기개발":   CategoryLife,
	"뷰티":     CategoryLife,
	"외국어 공부": CategoryLife,
	"쇼핑":     CategoryLife,
	"자동차":    CategoryLife,
	"패션":     CategoryLife,
	"SNS":    CategoryLife,
}

// CategoryOf returns the category of a vocabulary tag, or "" when the
// tag is outside the vocabulary.
func CategoryOf(tag string) string {
	return keywordToCategory[tag]
}

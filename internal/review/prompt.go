package review

import "fmt"

// promptTemplate is the fixed instruction the classifier receives, with the
// paragraph under review embedded verbatim.
const promptTemplate = `너는 NHN커머스 고도몰 블로그 원고를 검수하는 어시스턴트다.

아래 문단을 보고 다음 항목들을 판단해라.
반드시 JSON 문자열만 출력하라.

규칙:
1) "b2b_as_basic":    B2B 기능이 기본 기능처럼 보이게 표현됐는지 여부.
2) "free_b2b_mix":    무료/0원 프로모션 + B2B 내용이 섞여 잘못된 뉘앙스를 주는지 여부.
3) "haedream_mislabel":  해드림을 공식 에이전시처럼 잘못 표기했는지 여부.
4) "typo_exists":     맞춤법/띄어쓰기 문제가 있는지 여부.
5) "typo_examples":   대표적 맞춤법 오류 단어 3개 이하.

출력 형식(JSON 예시):

{
  "b2b_as_basic": false,
  "free_b2b_mix": true,
  "haedream_mislabel": false,
  "typo_exists": true,
  "typo_examples": ["예시1", "예시2"]
}

검수할 문단:
"""%s"""`

func buildPrompt(paragraphText string) string {
	return fmt.Sprintf(promptTemplate, paragraphText)
}

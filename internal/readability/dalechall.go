// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readability

import "strings"

// isFamiliarWord reports whether a word counts as familiar for the
// Dale-Chall formula. Numbers are familiar; otherwise the normalized word
// or its stem after stripping a common inflection must appear in the
// familiar-word table.
func isFamiliarWord(word string) bool {
	w := normalizeWord(word)
	if w == "" {
		// Tokens with no letters (plain numbers) are familiar.
		return true
	}
	if familiarWords[w] {
		return true
	}
	for _, suffix := range []string{"s", "es", "ed", "ing", "ly", "er"} {
		if stem := strings.TrimSuffix(w, suffix); stem != w && len(stem) >= 2 && familiarWords[stem] {
			return true
		}
	}
	return false
}

// familiarWords is the lookup table behind isFamiliarWord, built once from
// familiarWordList.
var familiarWords = func() map[string]bool {
	m := make(map[string]bool)
	for _, w := range strings.Fields(familiarWordList) {
		m[w] = true
	}
	return m
}()

// familiarWordList is an embedded subset of the Dale-Chall familiar-word
// list (words known to most fourth-grade readers), kept lowercase and
// whitespace-separated so the table above can be built with a single split.
const familiarWordList = `
a able about above across act add afraid after afternoon again against age
ago air all almost alone along already also always am among an and angry
animal another answer any anyone anything appear apple are arm around
arrive as ask asleep at ate away baby back bad bag ball band bank bark barn
base basket bat be bean bear beat beautiful became because become bed bee
been before began begin behind being believe bell belong below belt bend
beside best better between big bill bird bit bite black blanket blew block
blood blow blue board boat body bone book boot born borrow both bottle
bottom bought bow bowl box boy branch brave bread break breakfast bridge
bright bring broke brother brought brown brush build built burn bus busy
but butter buy by cake call came camp can candy cap captain car card care
careful carry case cat catch cattle caught cause cent center chair chance
change chase cheek cheese chicken chief child children church circle city
class clean clear climb clock close cloth clothes cloud coat cold collect
color come company cook cool copy corn corner correct cost cotton could
count country course cover cow crack cried cross crowd cry cup cut dance
dark day dead dear decide deep deer desk did die different dig dinner
direction dish do doctor does dog dollar done door double down draw dream
dress drink drive drop dry duck during dust each ear early earn earth east
easy eat edge egg eight either else empty end enemy enjoy enough enter even
evening ever every everyone everything exact except eye face fact fair fall
family far farm farmer fast fat father fear feed feel feet fell felt fence
few field fight fill final find fine finger finish fire first fish fit five
fix flag flat flew floor flower fly follow food foot for forest forget form
found four fox free fresh friend frog from front fruit full fun funny game
garden gate gave get gift girl give glad glass go goes gold gone good got
grade grain grand grass gray great green grew ground group grow guess had
hair half hall hand hang happen happy hard has hat have he head hear heard
heart heat heavy held hello help her here herself hid hide high hill him
himself his hit hold hole home hope horn horse hot hour house how hundred
hungry hunt hurry hurt i ice idea if important in inch inside instead into
iron is it its itself job join joke joy jump just keep kept key kick kill
kind king kitchen knee knew know lady lake land large last late laugh lay
lead leaf learn least leave left leg less let letter lie life lift light
like line lion lip list listen little live load long look lost lot loud
love low lunch made mail make man many map mark market matter may maybe me
mean measure meat meet men met middle might mile milk mind mine minute miss
moment money month moon more morning most mother mountain mouse mouth move
much music must my myself name near neck need needle neighbor nest never
new next nice night nine no noise none noon north nose not note nothing
notice now number nut ocean of off office often oh old on once one only
open or orange order other our out outside over own page paid pail paint
pair paper part party pass past pay pen pencil penny people perhaps person
pet pick picture pie piece pig place plan plant play please plenty pocket
point pond poor press pretty pull push put queen quick quiet quite rabbit
race rain raise ran reach read ready real red remember rest return rich
ride right ring river road rock roll roof room root rope rose round row rub
run sad safe said sail salt same sand sat save saw say school sea season
seat second see seed seem seen sell send sent set seven several shake shall
shape share sharp she sheep shine ship shirt shoe shop short should show
sick side sign silver since sing sister sit six size skin sky sleep slow
small smell smile snow so soft sold some someone something sometimes son
song soon sound soup south space speak spell spend spot spring square stand
star start stay step stick still stone stood stop store story straight
strange street strong such sudden sugar summer sun supper sure surprise
sweet swim table tail take talk tall teach teacher tear tell ten than thank
that the their them then there these they thick thin thing think third this
those though thought three through throw tie time tiny to today together
told tomorrow too took tooth top touch toward town toy train tree tried
trip truck true try turn twelve twenty two under until up upon us use very
visit voice wagon wait walk wall want war warm was wash watch water wave
way we wear weather week well went were west wet what wheel when where
which while white who whole why wide wild will win wind window wing winter
wish with without woman women wonder wood word wore work world would write
wrong yard year yellow yes yesterday yet you young your
`

package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/foodsentry/backend/internal/domain/entities"
	"github.com/foodsentry/backend/internal/domain/repositories"
)

// MemoryProteinCatalog serves the built-in food protein reference set.
// Safe for concurrent use; the tables are read-only after construction.
type MemoryProteinCatalog struct {
	mu           sync.RWMutex
	proteins     map[string]repositories.ProteinCatalogEntry
	bindingSites map[string][]entities.BindingSite
}

// NewMemoryProteinCatalog builds the catalog with the default dataset.
func NewMemoryProteinCatalog() *MemoryProteinCatalog {
	return &MemoryProteinCatalog{
		proteins:     defaultProteins(),
		bindingSites: defaultBindingSites(),
	}
}

func (c *MemoryProteinCatalog) GetProtein(_ context.Context, name string) (repositories.ProteinCatalogEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.proteins[normalizeName(name)]
	return entry, ok
}

func (c *MemoryProteinCatalog) GetBindingSites(_ context.Context, proteinName string) ([]entities.BindingSite, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sites, ok := c.bindingSites[normalizeName(proteinName)]
	return sites, ok
}

func (c *MemoryProteinCatalog) ListProteins(_ context.Context) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.proteins))
	for name := range c.proteins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

func defaultProteins() map[string]repositories.ProteinCatalogEntry {
	return map[string]repositories.ProteinCatalogEntry{
		"casein": {
			Name:                 "casein",
			Type:                 entities.ProteinTypeDairy,
			Sequence:             "MKLLILTCLVAVALARPKHPIKHQGLPQEVLNENLLRFFVAPFPEVFGKEKVNELSKDIGSESTEDQAMEDIKQMEAESISSSEEIVPNSVEQKHIQKEDVPSERYLGYLEQLLRLKKYKVPQLEIVPNSAEERLHSMKEGIHAQQKEPMIGVNQELAYFYPELFRQFYQLDAYPSGAWYYVPLGTQYTDAPSFSDIPNPIGSENSEKTTMPLW",
			FunctionalImportance: entities.ImportanceHigh,
		},
		"whey_protein": {
			Name:                 "whey_protein",
			Type:                 entities.ProteinTypeDairy,
			Sequence:             "MKCLLLALALTCGAQALIVTQTMKGLDIQKVAGTWYSLAMAASDISLLDAQSAPLRVYVEELKPTPEGDLEILLQKWENGECAQKKIIAEKTKIPAVFKIDALNENKVLVLDTDYKKYLLFCMENSAEPEQSLACQCLVRTPEVDDEALEKFDKALKALPMHIRLSFNPTQLEEQCHI",
			FunctionalImportance: entities.ImportanceHigh,
		},
		"gluten": {
			Name:                 "gluten",
			Type:                 entities.ProteinTypeGrain,
			Sequence:             "MKTFLILALLAIVATTATTAVRVPVPQLQPQNPSQQQPQEQVPLVQQQQFPGQQQPFPPQQPYPQPQPFPSQQPYLQLQPFPQPQLPYPQPQLPYPQPQLPYPQPQPFRPQQPYPQPQPQYSQPQQPISQQQQQQQQQQQQKQQQQQQQQILQQILQQQLIPCRDVVLQQHSIAYGSSQVLQQSTYQLVQQLCCQQLWQIPEQSRCQAIHNVVHAIILHQ",
			FunctionalImportance: entities.ImportanceHigh,
		},
		"albumin": {
			Name:                 "albumin",
			Type:                 entities.ProteinTypeMeat,
			Sequence:             "MKWVTFISLLLLFSSAYSRGVFRRDTHKSEIAHRFKDLGEEHFKGLVLIAFSQYLQQCPFDEHVKLVNELTEFAKTCVADESHAGCEKSLHTLFGDELCKVASLRETYGDMADCCEKQEPERNECFLSHKDDSPDLPKLKPDPNTLCDEFKADEKKFWGKYLYEIARRHPYFYAPELLYYANKYNGVFQECCQAEDKGACLLPKIETMREKVLASSARQRLRCASIQKFGERALKAWSVARLSQKFPKAEFVEVTKLVTDLTKVHKECCHGDLLECADDRADLAKYICDNQDTISSKLKECCDKPLLEKSHCIAEVEKDAIPENLPPLTADFAEDKDVCKNYQEAKDAFLGSFLYEYSRRHPEYAVSVLLRLAKEYEATLEECCAKDDPHACYSTVFDKLKHLVDEPQNLIKQNCDQFEKLGEYGFQNALIVRYTRKVPQVSTPTLVEVSRSLGKVGTRCCTKPESERMPCTEDYLSLILNRLCVLHEKTPVSEKVTKCCTESLVNRRPCFSALTPDETYVPKAFDEKLFTFHADICTLPDTEKQIKKQTALVELLKHKPKATEEQLKTVMENFVAFVDKCCAADDKEACFAVEGPKLVVSTQTALA",
			FunctionalImportance: entities.ImportanceHigh,
		},
		"myosin": {
			Name:                 "myosin",
			Type:                 entities.ProteinTypeMeat,
			Sequence:             "MSSDSEMAIFGEAAPYLRKSEKERIEAQNKPFDAKTSVFVVDPKESFVKATVQSREGGKVTAKTEAGATVTVKDDQVFPMNPPKYDKIEDMAMMTHLHEPAVLYNLKERYAAWMIYTYSGLFCVTVNPYKWLPVYNPEVVTAYRGKKRQEAPPHIFSISDNAYQFMLTDRENQSILITGESGAGKT",
			FunctionalImportance: entities.ImportanceMedium,
		},
		"amylase": {
			Name:                 "amylase",
			Type:                 entities.ProteinTypeEnzyme,
			Sequence:             "MKLFWLLFTIGFCWAQYSSNTQQGRTSIVHLFEWRWVDIALECERYLAPKGFGGVQVSPPNENVAIHNPFRPWWERYQPVSYKLCTRSGNEDEFRNMVTRCNNVGVRIYVDAVINHMCGNAVSAGTSSTCGSYFNPGSRDFPAVPYSGWDFNDGKCKTGSGDIENYNDATQVRDCRLSGLLDLALGKDYVRSKIAEYMNHLIDIGVAGFRIDASKHMWPGDIKAILDKLHNLNSNWFPEGSKPFIYQEVIDLGGEPIKSSDYFGNGRVTEFKYGAKLGTVIRKWNGEKMSYLKNWGEGWGFMPSDRALVFVDNHDNQRGHGAGGASILTFWDARLYKMAVGFMLAHPYGFTRVMSSYRWPRYFENGKDVNDWVGPPNDNGVTKEVTINPDTTCGNDWVCEHRWRQIRNMVNFRNVVDGQPFTNWYDNGSNQVAFGRGNRGFIVFNNDDWTFSLTLQTGLPAGTYCDVISGDKINGNCTGIKIYVSDDGKAHFSISNSAEDPFIAIHAESKL",
			FunctionalImportance: entities.ImportanceCritical,
		},
		"lysozyme": {
			Name:                 "lysozyme",
			Type:                 entities.ProteinTypeEnzyme,
			Sequence:             "MRSLLILVLCFLPLAALGKVFGRCELAAAMKRHGLDNYRGYSLGNWVCAAKFESNFNTQATNRNTDGSTDYGILQINSRWWCNDGRTPGSRNLCNIPCSALLSSDITASVNCAKKIVSDGNGMNAWVAWRNRCKGTDVQAWIRGCRL",
			FunctionalImportance: entities.ImportanceCritical,
		},
		"pepsin": {
			Name:                 "pepsin",
			Type:                 entities.ProteinTypeEnzyme,
			Sequence:             "MKWLLLLSLVVLSECLVKVPLVRKKSLRQNLIKNGKLKDFLKTHKHNPASKYFPEAAALIGDEPLENYLDTEYFGTIGIGTPAQDFTVIFDTGSSNLWVPSVYCSSLACSDHNQFNPDDSSTFEATSQELSITYGTGSMTGILGYDTVQVGGISDTNQIFGLSETEPGSFLYYAPFDGILGLAYPSISASGATPVFDNLWDQGLVSQDLFSVYLSSNDDSGSVVLLGGIDSSYYTGSLNWVPVSVEGYWQITLDSITMDGETIACSGGCQAIVDTGTSLLTGPTSAIANIQSDIGASENSDGEMVISCSSIDSLPDIVFTINGVQYPLSPSAYILQDDDSCTSGFEGMDVPTSSGELWILGDVFIRQYYTVFDRANNKVGLAPVA",
			FunctionalImportance: entities.ImportanceCritical,
		},
	}
}

func defaultBindingSites() map[string][]entities.BindingSite {
	return map[string][]entities.BindingSite{
		"casein": {
			{Residues: []int{45, 46, 47}, Type: entities.SiteTypeHydrophobic, Volume: 150},
			{Residues: []int{123, 124, 125}, Type: entities.SiteTypeElectrostatic, Volume: 100},
			{Residues: []int{200, 201, 202}, Type: entities.SiteTypeHydrogenBond, Volume: 80},
		},
		"whey_protein": {
			{Residues: []int{25, 26, 27}, Type: entities.SiteTypeHydrophobic, Volume: 120},
			{Residues: []int{67, 68, 69}, Type: entities.SiteTypeElectrostatic, Volume: 90},
			{Residues: []int{110, 111, 112}, Type: entities.SiteTypeHydrogenBond, Volume: 75},
		},
		"gluten": {
			{Residues: []int{35, 36, 37}, Type: entities.SiteTypeHydrophobic, Volume: 180},
			{Residues: []int{89, 90, 91}, Type: entities.SiteTypeElectrostatic, Volume: 110},
			{Residues: []int{145, 146, 147}, Type: entities.SiteTypeHydrogenBond, Volume: 95},
		},
	}
}

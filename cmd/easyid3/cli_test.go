package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/adriaciurana/easy-id3/pkg/id3"
)

const weatherCSV = `Outlook,Temp,Humidity,Windy,Play Golf
Rainy,Hot,High,False,No
Rainy,Hot,High,True,No
Overcast,Hot,High,False,Yes
Sunny,Mild,High,False,Yes
Sunny,Cool,Normal,False,Yes
Sunny,Cool,Normal,True,No
Overcast,Cool,Normal,True,Yes
Rainy,Mild,High,False,No
Rainy,Cold,Normal,False,Yes
Sunny,Mild,Normal,False,Yes
Rainy,Mild,Normal,True,Yes
Overcast,Mild,High,True,Yes
Overcast,Hot,Normal,False,Yes
Sunny,Mild,High,True,No
`

const weatherMetadata = `target: Play Golf
features:
  Outlook: [Sunny, Overcast, Rainy]
  Temp: [Hot, Mild, Cool, Cold]
  Humidity: [High, Normal]
  Windy: ["True", "False"]
`

const rowsCSV = `Outlook,Temp,Humidity,Windy
Sunny,Mild,High,True
Overcast,Cool,High,False
`

type CLISuite struct {
	suite.Suite
	dir       string
	trainPath string
	mdPath    string
	rowsPath  string
}

func (s *CLISuite) SetupTest() {
	viper.Reset()
	s.dir = s.T().TempDir()
	s.trainPath = s.writeFile("weather.csv", weatherCSV)
	s.mdPath = s.writeFile("weather.yml", weatherMetadata)
	s.rowsPath = s.writeFile("rows.csv", rowsCSV)
}

func (s *CLISuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *CLISuite) run(args ...string) string {
	cmd := cliParser()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append(args, "--log-level", "warn"))
	s.Require().NoError(cmd.Execute())
	return out.String()
}

func (s *CLISuite) TestVersion() {
	s.Equal("easyid3 v0.1.0\n", s.run("version"))
}

func (s *CLISuite) TestGrow() {
	out := s.run("grow", "-i", s.trainPath, "-t", "Play Golf")
	s.Contains(out, "{ root }")
	s.Contains(out, "{ split=Outlook }")
	s.Contains(out, "{ Windy = True }")
}

func (s *CLISuite) TestGrowWithMetadata() {
	out := s.run("grow", "-i", s.trainPath, "-m", s.mdPath)
	s.Contains(out, "{ No:5 Yes:9 }")
	s.Contains(out, "{ split=Humidity }")
}

func (s *CLISuite) TestGrowToFile() {
	path := filepath.Join(s.dir, "tree.txt")
	s.Empty(s.run("grow", "-i", s.trainPath, "-t", "Play Golf", "-o", path))
	content, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Contains(string(content), "{ split=Outlook }")
}

func (s *CLISuite) TestGrowLeaves() {
	out := s.run("grow", "-i", s.trainPath, "-t", "Play Golf", "--leaves")
	s.Contains(out, "Outlook = Rainy, Humidity = Normal")
	s.Contains(out, "Outlook = Sunny, Windy = True")
	s.Contains(out, "Overcast")
}

func (s *CLISuite) TestPredictCSV() {
	out := s.run("predict", "-i", s.trainPath, "-t", "Play Golf", "-p", s.rowsPath, "--csv")
	s.Equal("Outlook,Temp,Humidity,Windy,Play Golf\nSunny,Mild,High,True,No\nOvercast,Cool,High,False,Yes\n", out)
}

func (s *CLISuite) TestPredictTable() {
	out := s.run("predict", "-i", s.trainPath, "-m", s.mdPath, "-p", s.rowsPath)
	s.Contains(out, "Sunny")
	s.Contains(out, "No")
}

func (s *CLISuite) TestSetAndTestFromSQLite3() {
	dbPath := filepath.Join(s.dir, "weather.db")
	s.Empty(s.run("set", "-i", s.trainPath, "-o", dbPath, "--output-sql-table", "weather"))
	out := s.run("test", "-i", dbPath, "--sql-table", "weather", "-t", "Play Golf", "-e", s.trainPath)
	s.Equal("1.000000 success rate\n", out)
}

func (s *CLISuite) storeWeather() string {
	dbPath := filepath.Join(s.dir, "weather.db")
	s.Empty(s.run("set", "-i", s.trainPath, "-o", dbPath, "--output-sql-table", "weather"))
	return dbPath
}

func (s *CLISuite) TestGrowFromSQLite3WithMetadataAndAttributes() {
	dbPath := s.storeWeather()
	out := s.run("grow", "-i", dbPath, "--sql-table", "weather", "-m", s.mdPath, "-a", "Outlook")
	s.Contains(out, "{ split=Outlook }")
	s.NotContains(out, "Humidity")
	s.NotContains(out, "Windy")
}

func (s *CLISuite) TestGrowFromSQLite3MatchesCSV() {
	dbPath := s.storeWeather()
	fromCSV := s.run("grow", "-i", s.trainPath, "-m", s.mdPath)
	fromDB := s.run("grow", "-i", dbPath, "--sql-table", "weather", "-m", s.mdPath)
	s.Equal(fromCSV, fromDB)
}

func (s *CLISuite) TestTrainingFlagsFromConfigFile() {
	cfgPath := s.writeFile("easyid3.yml", "target: Play Golf\nattributes: [Outlook]\n")
	out := s.run("grow", "-i", s.trainPath, "--config", cfgPath)
	s.Contains(out, "{ split=Outlook }")
	s.NotContains(out, "Humidity")
}

func (s *CLISuite) TestTrainingFlagsFromEnvironment() {
	s.T().Setenv("EASYID3_TARGET", "Play Golf")
	s.T().Setenv("EASYID3_ATTRIBUTES", "Outlook,Windy")
	out := s.run("grow", "-i", s.trainPath)
	s.Contains(out, "{ split=Windy }")
	s.NotContains(out, "Humidity")
}

func (s *CLISuite) TestFlagsOverrideEnvironment() {
	s.T().Setenv("EASYID3_TARGET", "Outlook")
	out := s.run("grow", "-i", s.trainPath, "-t", "Play Golf")
	s.Contains(out, "{ split=Outlook }")
}

func (s *CLISuite) TestInvalidLogLevelIsNotPrintedByCobra() {
	cmd := cliParser()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"version", "--log-level", "trace"})
	s.Error(cmd.Execute())
	s.Empty(out.String())
	s.Empty(errOut.String())
	s.Require().NoError(setLogLevel("warn", logFormatTextValue))
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func TestSetLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn"} {
		assert.NoError(t, setLogLevel(level, logFormatJSONValue))
		assert.NoError(t, setLogLevel(level, logFormatTextValue))
	}
	assert.Error(t, setLogLevel("trace", logFormatTextValue))
	assert.Error(t, setLogLevel("info", "xml"))
	require.NoError(t, setLogLevel("warn", logFormatTextValue))
}

func TestDataSourceKind(t *testing.T) {
	cases := map[string]sourceKind{
		"":                               csvSource,
		"weather.csv":                    csvSource,
		"weather.db":                     sqlite3Source,
		"postgresql://localhost/weather": postgreSQLSource,
		"postgres://localhost/weather":   postgreSQLSource,
		"mongodb://localhost/weather":    mongoDBSource,
	}
	for location, expected := range cases {
		ds := &dataSource{location: location}
		assert.Equal(t, expected, ds.kind(), location)
	}
}

func TestDataSourceValidate(t *testing.T) {
	assert.NoError(t, (&dataSource{location: "weather.csv"}).Validate())
	assert.Error(t, (&dataSource{location: "weather.db"}).Validate())
	assert.NoError(t, (&dataSource{location: "weather.db", sqlTable: "weather"}).Validate())
	assert.Error(t, (&dataSource{location: "mongodb://localhost/weather", sqlTable: "weather"}).Validate())
	assert.NoError(t, (&dataSource{location: "mongodb://localhost/weather", mongoCollection: "weather"}).Validate())
}

func TestCommandValidate(t *testing.T) {
	tc := newTrainingConfig()
	assert.Error(t, tc.Validate())
	tc.target = "Play Golf"
	assert.NoError(t, tc.Validate())

	pcc := &predictCmdConfig{trainingConfig: tc}
	assert.ErrorIs(t, pcc.Validate(), errBothFromStdin)
	pcc.predictionSet.location = "rows.csv"
	assert.NoError(t, pcc.Validate())

	scc := &setCmdConfig{output: "weather.csv", outputSQLTable: "weather"}
	assert.Error(t, scc.Validate())
	scc.output = "weather.db"
	assert.NoError(t, scc.Validate())
}

func TestLoadMetadata(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.yml")
	require.NoError(t, os.WriteFile(path, []byte(weatherMetadata), 0o600))

	tc := newTrainingConfig()
	tc.metadataInput = path
	require.NoError(t, tc.loadMetadata())
	assert.Equal(t, "Play Golf", tc.target)
	assert.Equal(t, []string{"Humidity", "Outlook", "Temp", "Windy"}, tc.attributes)

	tc = newTrainingConfig()
	tc.metadataInput = path
	tc.target = "Play Tennis"
	assert.Error(t, tc.loadMetadata())
}

func TestValidateSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.yml")
	require.NoError(t, os.WriteFile(path, []byte(weatherMetadata), 0o600))
	tc := newTrainingConfig()
	tc.metadataInput = path
	require.NoError(t, tc.loadMetadata())

	rows, err := id3.NewTable([]string{"Outlook", "Temp", "Humidity", "Windy"}, [][]string{{"Sunny", "Mild", "High", "True"}})
	require.NoError(t, err)
	assert.NoError(t, tc.validateSet(rows, false))
	assert.ErrorIs(t, tc.validateSet(rows, true), id3.ErrTargetNotFound)

	foggy, err := id3.NewTable([]string{"Outlook", "Temp", "Humidity", "Windy"}, [][]string{{"Foggy", "Mild", "High", "True"}})
	require.NoError(t, err)
	assert.Error(t, tc.validateSet(foggy, false))

	tc.attributes = []string{"Temp"}
	assert.NoError(t, tc.validateSet(foggy, false))

	assert.NoError(t, newTrainingConfig().validateSet(foggy, true))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Outlook", "Windy", "Temp"}, splitList([]string{"Outlook, Windy", "Temp", ""}))
	assert.Empty(t, splitList(nil))
}

package legal

import "fmt"

// Slugs dos documentos publicados.
const (
	SlugPrivacy = "politica-de-privacidade"
	SlugTerms   = "termos-de-uso"
)

// Section seção numerada de um documento legal.
type Section struct {
	Number int
	Title  string
	Body   string
}

// Heading devolve "N. Título".
func (s Section) Heading() string {
	return fmt.Sprintf("%d. %s", s.Number, s.Title)
}

func privacySections(name, cnpj string) []Section {
	return []Section{
		{1, "Dados que coletamos", "Coletamos apenas os dados necessários para o funcionamento do Sistema de Movimento de Caixa (PloutosLedger): identificação de usuário, dados de movimentação financeira que você insere (entradas, saídas, lançamentos) e preferências de uso. Não vendemos nem compartilhamos seus dados com terceiros para marketing."},
		{2, "Como usamos seus dados", "Os dados são utilizados para: prestação do serviço (cálculos, relatórios, cupons fiscais), autenticação e controle de acesso, backups e recuperação, e cumprimento de obrigações legais quando aplicável. Podemos utilizar dados agregados e anonimizados para melhorar o produto."},
		{3, "Seus direitos (LGPD)", fmt.Sprintf("Você tem direito a: acesso aos seus dados, correção de dados inexatos, exclusão (quando não houver dever legal de retenção), portabilidade, revogação do consentimento quando aplicável, e informação sobre com quem compartilhamos dados. Para exercer esses direitos, entre em contato conosco pelos canais oficiais da %s.", name)},
		{4, "Segurança e armazenamento", "Adotamos medidas técnicas e organizacionais para proteger seus dados contra acesso não autorizado, perda ou alteração. Parte dos dados pode ser armazenada localmente no seu dispositivo (por exemplo, dados de movimento de caixa) conforme a configuração do sistema. Em ambiente online, utilizamos práticas recomendadas de segurança."},
		{5, "Alterações", "Esta política pode ser atualizada. Alterações relevantes serão comunicadas por meio do sistema ou por e-mail quando necessário. O uso continuado do serviço após a publicação de alterações constitui aceite da nova versão."},
		{6, "Contato", fmt.Sprintf("Para dúvidas sobre esta Política de Privacidade ou sobre o tratamento dos seus dados, entre em contato com a %s, CNPJ %s, pelos canais disponíveis no site ou no próprio sistema.", name, cnpj)},
	}
}

func termsSections(name, cnpj string) []Section {
	return []Section{
		{1, "Objeto e aceitação", fmt.Sprintf("Estes Termos regem o uso do software PloutosLedger (Sistema de Movimento de Caixa), oferecido pela %s, CNPJ %s. O acesso ou uso do sistema implica aceitação integral destes Termos. Se você não concordar, não utilize o serviço.", name, cnpj)},
		{2, "Uso permitido", "O sistema destina-se ao controle de movimento de caixa, lançamentos financeiros, emissão de relatórios e funcionalidades correlatas, em conformidade com a licença adquirida. É permitido usar o sistema de forma lícita, responsável e de acordo com a documentação e orientações fornecidas. O usuário é responsável pela veracidade e pela guarda dos dados que inserir."},
		{3, "Uso proibido", "É vedado: (a) utilizar o sistema para fins ilícitos ou em desacordo com a lei; (b) tentar acessar áreas restritas, outros usuários ou dados de terceiros sem autorização; (c) copiar, modificar, distribuir ou engenhar reversa do software sem autorização expressa; (d) sobrecarregar a infraestrutura ou prejudicar a disponibilidade do serviço; (e) usar o sistema para distribuir malware ou conteúdo ofensivo. O descumprimento pode resultar em rescisão do acesso e medidas legais."},
		{4, "Licença e propriedade", fmt.Sprintf("O PloutosLedger e todo o conteúdo técnico e de marca relacionados são de propriedade da %s ou de seus licenciadores. É concedida ao usuário uma licença de uso, não exclusiva e intransferível, conforme o plano ou contrato vigente. Nenhuma parte destes Termos transmite propriedade do software ao usuário.", name)},
		{5, "Disponibilidade e suporte", fmt.Sprintf("A %s busca manter o sistema disponível, mas não garante disponibilidade ininterrupta. Manutenções programadas podem ser comunicadas previamente. O suporte técnico é oferecido conforme o plano contratado e pelos canais oficiais de atendimento.", name)},
		{6, "Limitação de responsabilidade", fmt.Sprintf("O sistema é fornecido \"como está\". Na medida permitida pela lei, a %s não se responsabiliza por danos indiretos, lucros cessantes ou perda de dados decorrentes do uso ou da indisponibilidade do sistema. A responsabilidade do usuário pelos lançamentos e decisões tomadas com base nos dados do sistema é exclusiva do usuário.", name)},
		{7, "Alterações e rescisão", fmt.Sprintf("Estes Termos podem ser alterados a qualquer momento, com divulgação no sistema ou por e-mail. O uso continuado após alterações constitui aceite. A %s pode encerrar ou suspender o acesso em caso de violação destes Termos ou por decisão comercial, com aviso quando aplicável.", name)},
		{8, "Lei aplicável e foro", fmt.Sprintf("Estes Termos são regidos pelas leis da República Federativa do Brasil. Eventuais disputas serão submetidas ao foro da comarca do domicílio da %s, com renúncia a qualquer outro, por mais privilegiado que seja.", name)},
		{9, "Contato", fmt.Sprintf("Dúvidas sobre estes Termos de Uso devem ser dirigidas à %s, CNPJ %s, pelos canais oficiais de contato disponíveis no site ou no sistema.", name, cnpj)},
	}
}
